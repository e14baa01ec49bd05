package connect

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"gitee.com/kxapp/kxapp-common/httpz"
	"github.com/appuploader/appstore-connect-v3/token"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var jsonz = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultServiceURL is the production API host. All list/create/delete
// operations append their resource path to the client's ServiceURL.
const DefaultServiceURL = "https://api.appstoreconnect.apple.com/v1/"

// Config carries everything a client needs. All three credential fields are
// required and validated up front; Timeout is optional and passed through to
// the underlying transport (zero means no client-side deadline).
type Config struct {
	IssuerID   string
	KeyID      string
	PrivateKey []byte
	Timeout    time.Duration
}

/*
Client is a key-authenticated App Store Connect API client. It owns its
credentials and a cached bearer token which is re-signed once stale; the
cache is guarded by a mutex so a client shared across goroutines refreshes
single-flight. Every operation performs exactly one HTTP call.
*/
type Client struct {
	//https://api.appstoreconnect.apple.com/v1/
	ServiceURL string

	rest   *resty.Client
	signer *token.Signer

	mu     sync.Mutex
	cached *token.Token
}

// NewClient validates the config, parses the private key and returns a ready
// client. A malformed key fails here with token.InvalidKeyError, before any
// network traffic.
func NewClient(config Config) (*Client, error) {
	signer, e := token.NewSigner(token.Credentials{
		IssuerID:   config.IssuerID,
		KeyID:      config.KeyID,
		PrivateKey: config.PrivateKey,
	})
	if e != nil {
		return nil, e
	}
	rest := resty.NewWithClient(httpz.NewHttpClient(nil))
	rest.SetHeader("Accept", "application/json")
	if config.Timeout > 0 {
		rest.SetTimeout(config.Timeout)
	}
	return &Client{
		ServiceURL: DefaultServiceURL,
		rest:       rest,
		signer:     signer,
	}, nil
}

// loadToken returns the cached token, signing a fresh one when absent or
// stale. A token is never presented past its expiry.
func (c *Client) loadToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	if c.cached == nil || c.cached.Expired(now) {
		t, e := c.signer.Sign(now)
		if e != nil {
			return "", e
		}
		c.cached = t
	}
	return c.cached.Value, nil
}

/*
do performs one signed HTTP call. query pairs are appended in the order
supplied; body (if any) is marshaled to JSON and flagged with the matching
Content-Type. No retries, no backoff: every failure surfaces to the caller.
*/
func (c *Client) do(method string, urlStr string, query Params, body any) (*resty.Response, error) {
	bearer, e := c.loadToken()
	if e != nil {
		return nil, e
	}
	if len(query) > 0 {
		urlStr = urlStr + "?" + query.Encode()
	}
	request := c.rest.R().SetHeader("Authorization", "Bearer "+bearer)
	if body != nil {
		data, e2 := jsonz.Marshal(body)
		if e2 != nil {
			return nil, &DecodeError{Err: e2}
		}
		request.SetHeader("Content-Type", "application/json").SetBody(data)
	}
	requestId := uuid.New().String()
	log.Debugf("connect api %s: %s %s", requestId, method, urlStr)
	response, e := request.Execute(method, urlStr)
	if e != nil {
		return nil, &TransportError{Err: e}
	}
	log.Debugf("connect api %s: status %d", requestId, response.StatusCode())
	return response, nil
}

// requestEntity dispatches and decodes a 2xx body into T, or maps the error
// envelope. Package-level because methods cannot take type parameters.
func requestEntity[T any](c *Client, method string, urlStr string, query Params, body any) (*T, error) {
	response, e := c.do(method, urlStr, query, body)
	if e != nil {
		return nil, e
	}
	return decodeBody[T](response.StatusCode(), response.Body())
}

// requestNoBody is for operations whose success responses are empty (204).
func requestNoBody(c *Client, method string, urlStr string, query Params, body any) error {
	response, e := c.do(method, urlStr, query, body)
	if e != nil {
		return e
	}
	status := response.StatusCode()
	if status/100 != 2 {
		return parseApiError(status, response.Body())
	}
	return nil
}

func decodeBody[T any](status int, body []byte) (*T, error) {
	if status/100 != 2 {
		return nil, parseApiError(status, body)
	}
	result := new(T)
	if e := jsonz.Unmarshal(body, result); e != nil {
		return nil, &DecodeError{Status: status, Body: body, Err: e}
	}
	return result, nil
}

// IsNotFound reports whether err is an ApiError with HTTP status 404.
func IsNotFound(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
