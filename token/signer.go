package token

import (
	"crypto/ecdsa"
	"crypto/x509"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience is the fixed aud claim the App Store Connect API validates.
const Audience = "appstoreconnect-v1"

// Lifetime is the maximum token lifetime the server accepts; longer gets a
// 401 NOT_AUTHORIZED on every call.
const Lifetime = 20 * time.Minute

// expireEarly retires a cached token well before its exp claim so the server
// never sees a token on the edge of expiry.
const expireEarly = 5 * time.Minute

/*
Credentials are the three fields of an App Store Connect API key: the issuer
id of the account, the key id shown in the portal, and the private key
downloaded as AuthKey_<kid>.p8 with the PEM armor stripped (the raw DER
bytes after base64 decoding).
*/
type Credentials struct {
	IssuerID   string
	KeyID      string
	PrivateKey []byte
}

// Token is a signed bearer credential. Valid until ExpiresAt; it is never
// written to disk, a process signs fresh ones as needed.
type Token struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token should no longer be presented. The check
// fires early so in-flight requests cannot straddle the real expiry.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt.Add(-expireEarly))
}

// Signer turns Credentials into tokens. It is stateless apart from the
// parsed key; caching signed tokens is the caller's job.
type Signer struct {
	credentials Credentials
	key         *ecdsa.PrivateKey
}

// NewSigner validates the credentials and parses the private key. Key bytes
// that are not an EC private key fail with InvalidKeyError.
func NewSigner(credentials Credentials) (*Signer, error) {
	if credentials.IssuerID == "" {
		return nil, errors.New("issuer id must be set")
	}
	if credentials.KeyID == "" {
		return nil, errors.New("key id must be set")
	}
	if len(credentials.PrivateKey) == 0 {
		return nil, errors.New("private key must be set")
	}
	key, e := parseECPrivateKey(credentials.PrivateKey)
	if e != nil {
		return nil, e
	}
	return &Signer{credentials: credentials, key: key}, nil
}

/*
Sign issues a token bound to now. Claims follow the shape the server
mandates:

	{"iss":<issuer id>,"iat":<now>,"exp":<now+20m>,"aud":"appstoreconnect-v1"}

with an ES256 header carrying the key id.
*/
func (s *Signer) Sign(now time.Time) (*Token, error) {
	expiresAt := now.Add(Lifetime)
	claims := jwt.MapClaims{
		"iss": s.credentials.IssuerID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"aud": Audience,
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	jwtToken.Header["kid"] = s.credentials.KeyID
	signed, e := jwtToken.SignedString(s.key)
	if e != nil {
		return nil, &SigningError{Err: e}
	}
	return &Token{Value: signed, IssuedAt: now, ExpiresAt: expiresAt}, nil
}

/*
Apple ships .p8 keys in PKCS#8; keys exported by other tooling sometimes
come as SEC1 EC DER, so both are accepted.
*/
func parseECPrivateKey(der []byte) (*ecdsa.PrivateKey, error) {
	parsed, e := x509.ParsePKCS8PrivateKey(der)
	if e == nil {
		key, ok := parsed.(*ecdsa.PrivateKey)
		if !ok {
			return nil, &InvalidKeyError{Err: fmt.Errorf("pkcs8 key is %T, not an EC private key", parsed)}
		}
		return key, nil
	}
	key, e2 := x509.ParseECPrivateKey(der)
	if e2 != nil {
		return nil, &InvalidKeyError{Err: fmt.Errorf("not pkcs8 (%s) nor sec1 (%s)", e, e2)}
	}
	return key, nil
}

// InvalidKeyError means the supplied key bytes do not parse as an EC private
// key. Fatal, never retried.
type InvalidKeyError struct {
	Err error
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid EC private key: %s", e.Err)
}

func (e *InvalidKeyError) Unwrap() error {
	return e.Err
}

// SigningError means the ES256 primitive itself failed. Should not happen
// with a key that passed NewSigner.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("token signing failed: %s", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}
