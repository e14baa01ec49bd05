package util

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"

	"golang.org/x/crypto/ocsp"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

const (
	csrFileName        = "csr.pem"
	privateKeyFileName = "pri.pem"
	publicKeyFileName  = "pub.pem"
)

func NewPKIXName(name string, email string, country string) pkix.Name {
	var (
		oidCountry    = []int{2, 5, 4, 6}
		oidCommonName = []int{2, 5, 4, 3}
		oidEmail      = []int{1, 2, 840, 113549, 1, 9, 1}
	)
	return pkix.Name{
		Country:    []string{country},
		CommonName: name,
		Names: []pkix.AttributeTypeAndValue{
			{Type: oidEmail, Value: email},
			{Type: oidCommonName, Value: name},
			{Type: oidCountry, Value: country},
		},
	}
}

// NewCSR builds a PEM certificate signing request suitable for the
// csrContent attribute of a certificate create request. keypair must be an
// *rsa.PrivateKey or *ecdsa.PrivateKey.
func NewCSR(keypair any, email string, name string) ([]byte, error) {
	alg := x509.SHA256WithRSA
	if _, ok := keypair.(*ecdsa.PrivateKey); ok {
		alg = x509.ECDSAWithSHA256
	}
	template := x509.CertificateRequest{
		Subject:            NewPKIXName(name, email, "CN"),
		SignatureAlgorithm: alg,
	}
	der, e := x509.CreateCertificateRequest(rand.Reader, &template, keypair)
	if e != nil {
		return nil, e
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE REQUEST", Bytes: der}), nil
}

// CreateCertRequest generates an RSA 2048 keypair and writes csr.pem,
// pri.pem and pub.pem into tempDir.
func CreateCertRequest(tempDir string, email string, name string) error {
	keys, e := rsa.GenerateKey(rand.Reader, 2048)
	if e != nil {
		return e
	}
	return writeCertRequestFiles(tempDir, keys, &keys.PublicKey, email, name)
}

// CreateCertRequestEcc is the P-256 variant; APPLE_PAY certificates require
// an EC key.
func CreateCertRequestEcc(tempDir string, email string, name string) error {
	keys, e := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if e != nil {
		return e
	}
	return writeCertRequestFiles(tempDir, keys, &keys.PublicKey, email, name)
}

func writeCertRequestFiles(tempDir string, privateKey any, publicKey any, email string, name string) error {
	csr, e := NewCSR(privateKey, email, name)
	if e != nil {
		return e
	}
	if e = os.MkdirAll(tempDir, fs.ModePerm); e != nil {
		return e
	}
	if e = os.WriteFile(path.Join(tempDir, csrFileName), csr, fs.ModePerm); e != nil {
		return e
	}
	if e = WritePrivateKey(privateKey, path.Join(tempDir, privateKeyFileName)); e != nil {
		return e
	}
	return WritePublicKey(publicKey, path.Join(tempDir, publicKeyFileName))
}

func CSRPath(tempDir string) string {
	return path.Join(tempDir, csrFileName)
}

func PrivateKeyPath(tempDir string) string {
	return path.Join(tempDir, privateKeyFileName)
}

// WritePrivateKey stores any supported key as PKCS#8 PEM.
func WritePrivateKey(key any, filePath string) error {
	der, e := x509.MarshalPKCS8PrivateKey(key)
	if e != nil {
		return e
	}
	data := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return os.WriteFile(filePath, data, fs.ModePerm)
}

func WritePublicKey(key any, filePath string) error {
	der, e := x509.MarshalPKIXPublicKey(key)
	if e != nil {
		return e
	}
	data := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return os.WriteFile(filePath, data, fs.ModePerm)
}

// ReadPrivateKey loads a PEM private key, accepting PKCS#8, PKCS#1 and SEC1
// encodings.
func ReadPrivateKey(filePath string) (any, error) {
	data, e := os.ReadFile(filePath)
	if e != nil {
		return nil, e
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("decode %s as pem private key fail", filePath)
	}
	if key, e2 := x509.ParsePKCS8PrivateKey(block.Bytes); e2 == nil {
		return key, nil
	}
	if key, e2 := x509.ParsePKCS1PrivateKey(block.Bytes); e2 == nil {
		return key, nil
	}
	return x509.ParseECPrivateKey(block.Bytes)
}

// CertificateContentToPEM wraps the base64 DER from the certificateContent
// attribute into a PEM certificate block.
func CertificateContentToPEM(basedContent string) ([]byte, error) {
	der, e := base64.StdEncoding.DecodeString(basedContent)
	if e != nil {
		return nil, e
	}
	var buf bytes.Buffer
	if e = pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: der}); e != nil {
		return nil, e
	}
	return buf.Bytes(), nil
}

func WriteAppleCertContentToFile(basedCertContent string, pemCertPath string) error {
	data, e := CertificateContentToPEM(basedCertContent)
	if e != nil {
		return e
	}
	return os.WriteFile(pemCertPath, data, fs.ModePerm)
}

func ReadCertificate(pemCertPath string) (*x509.Certificate, error) {
	data, e := os.ReadFile(pemCertPath)
	if e != nil {
		return nil, e
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("decode %s as pem certificate fail", pemCertPath)
	}
	return x509.ParseCertificate(block.Bytes)
}

// WriteP12File bundles the private key and certificate into a passworded
// .p12 and writes it to p12Path.
func WriteP12File(priKeyPath string, certPath string, p12Path string, password string) ([]byte, error) {
	privateKey, e := ReadPrivateKey(priKeyPath)
	if e != nil {
		return nil, e
	}
	certificate, e := ReadCertificate(certPath)
	if e != nil {
		return nil, e
	}
	p12Data, e := gopkcs12.Legacy.Encode(privateKey, certificate, nil, password)
	if e != nil {
		return nil, e
	}
	if e = os.MkdirAll(path.Dir(p12Path), fs.ModePerm); e != nil {
		return nil, e
	}
	return p12Data, os.WriteFile(p12Path, p12Data, fs.ModePerm)
}

/*
OCSPStatusCheck asks the certificate's OCSP responder whether it has been
revoked. The portal revokes development certificates server side without
notice, so this is the cheap way to check a local .p12 before a build.
*/
func OCSPStatusCheck(cert *x509.Certificate) (*ocsp.Response, error) {
	if len(cert.OCSPServer) == 0 {
		return nil, fmt.Errorf("certificate carries no OCSP responder URL")
	}
	ocspURL := cert.OCSPServer[0]
	issuerCertURL := ocspURL
	if cert.IssuingCertificateURL != nil {
		issuerCertURL = cert.IssuingCertificateURL[0]
	}
	issuer, e := getCertFromURL(issuerCertURL)
	if e != nil {
		return nil, fmt.Errorf("getting issuer certificate: %w", e)
	}
	request, e := ocsp.CreateRequest(cert, issuer, &ocsp.RequestOptions{Hash: crypto.SHA1})
	if e != nil {
		return nil, fmt.Errorf("creating ocsp request body: %w", e)
	}
	httpRequest, e := http.NewRequest(http.MethodPost, ocspURL, bytes.NewReader(request))
	if e != nil {
		return nil, fmt.Errorf("creating http request: %w", e)
	}
	parsedURL, e := url.Parse(ocspURL)
	if e != nil {
		return nil, fmt.Errorf("parsing ocsp url: %w", e)
	}
	httpRequest.Header.Add("Content-Type", "application/ocsp-request")
	httpRequest.Header.Add("Accept", "application/ocsp-response")
	httpRequest.Header.Add("host", parsedURL.Host)

	httpResponse, e := http.DefaultClient.Do(httpRequest)
	if e != nil {
		return nil, fmt.Errorf("making ocsp request: %w", e)
	}
	defer httpResponse.Body.Close()
	output, e := io.ReadAll(httpResponse.Body)
	if e != nil {
		return nil, fmt.Errorf("reading response body: %w", e)
	}
	response, e := ocsp.ParseResponse(output, issuer)
	if e != nil {
		return nil, fmt.Errorf("parsing ocsp response: %w", e)
	}
	return response, nil
}

func getCertFromURL(urlStr string) (*x509.Certificate, error) {
	response, e := http.Get(urlStr)
	if e != nil {
		return nil, fmt.Errorf("getting cert from %s: %w", urlStr, e)
	}
	defer response.Body.Close()
	body, e := io.ReadAll(response.Body)
	if e != nil {
		return nil, fmt.Errorf("reading response body: %w", e)
	}
	cert, e := x509.ParseCertificate(body)
	if e != nil {
		return nil, fmt.Errorf("parsing certificate: %w", e)
	}
	return cert, nil
}

func OCSPStatusName(status int) string {
	switch status {
	case ocsp.Revoked:
		return "Revoked"
	case ocsp.Good:
		return "Good"
	case ocsp.ServerFailed:
		return "ServerFailed"
	default:
		return "Unknown"
	}
}
