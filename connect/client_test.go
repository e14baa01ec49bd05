package connect

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	beans "github.com/appuploader/appstore-connect-v3/model"
	"github.com/appuploader/appstore-connect-v3/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	key, e := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, e)
	der, e := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, e)
	return Config{
		IssuerID:   "57246542-96fe-1a63-e053-0824d011072a",
		KeyID:      "2X9R4HXF34",
		PrivateKey: der,
		Timeout:    10 * time.Second,
	}
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, e := NewClient(testConfig(t))
	require.NoError(t, e)
	client.ServiceURL = server.URL + "/v1/"
	return client
}

const devicePageBody = `{
  "data": [
    {
      "type": "devices",
      "id": "D1",
      "attributes": {
        "addedDate": "2022-12-10T12:02:45.000+00:00",
        "name": "mini",
        "deviceClass": "IPHONE",
        "model": "iPhone 13 mini",
        "udid": "00008110-000A51App1E801E",
        "platform": "IOS",
        "status": "ENABLED"
      },
      "links": {"self": "https://api.appstoreconnect.apple.com/v1/devices/D1"}
    }
  ],
  "links": {
    "self": "https://api.appstoreconnect.apple.com/v1/devices",
    "next": "https://api.appstoreconnect.apple.com/v1/devices?cursor=AMg.HLrvSdg"
  },
  "meta": {"paging": {"total": 17, "limit": 1}}
}`

func TestDevicesRequestAndDecode(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, devicePageBody)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	page, e := client.Devices(DeviceQuery{FilterName: "mini", Limit: 10})
	require.NoError(t, e)

	assert.Equal(t, "/v1/devices", gotPath)
	assert.Equal(t, "filter%5Bname%5D=mini&limit=10", gotQuery)

	require.True(t, strings.HasPrefix(gotAuth, "Bearer "), "authorization header %q", gotAuth)
	assert.Len(t, strings.Split(strings.TrimPrefix(gotAuth, "Bearer "), "."), 3)

	require.Len(t, page.Data, 1)
	device := page.Data[0]
	assert.Equal(t, "D1", device.Id)
	assert.Equal(t, "mini", device.Attributes.Name)
	assert.Equal(t, beans.DeviceStatus_Enabled, device.Attributes.Status)
	assert.Equal(t, 2022, device.Attributes.AddedDate.Year())
	assert.Equal(t, int64(17), page.Meta.Paging.Total)
	assert.Contains(t, page.Links.Next, "cursor=")
}

func TestRegisterDeviceBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"type":"devices","id":"D2","attributes":{"addedDate":"2023-01-02T03:04:05Z","name":"bench phone","deviceClass":"IPHONE","udid":"udid-2","platform":"IOS","status":"PROCESSING"},"links":{"self":"x"}},"links":{"self":"x"}}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	entity, e := client.RegisterDevice(beans.NewDeviceCreateRequest("bench phone", beans.Platform_IOS, "udid-2"))
	require.NoError(t, e)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	require.NotNil(t, gotBody["data"])
	data := gotBody["data"].(map[string]any)
	assert.Equal(t, "devices", data["type"])
	attributes := data["attributes"].(map[string]any)
	assert.Equal(t, "bench phone", attributes["name"])
	assert.Equal(t, "udid-2", attributes["udid"])

	assert.Equal(t, "D2", entity.Data.Id)
	assert.Equal(t, beans.DeviceStatus_Processing, entity.Data.Attributes.Status)
}

func TestApiErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"errors":[{"status":"404","code":"NOT_FOUND","title":"The specified resource does not exist","detail":"There is no resource of type 'profiles' with id 'P404'"}]}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	e := client.DeleteProfile("P404")
	require.Error(t, e)

	var apiErr *ApiError
	require.True(t, errors.As(e, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "NOT_FOUND", apiErr.Errors[0].Code)
	assert.Contains(t, apiErr.Error(), "NOT_FOUND")
	assert.True(t, IsNotFound(e))
}

func TestDecodeErrorOnMalformedErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	}))
	defer server.Close()
	client := newTestClient(t, server)

	_, e := client.Certificates(CertificateQuery{})
	require.Error(t, e)

	var decodeErr *DecodeError
	require.True(t, errors.As(e, &decodeErr))
	assert.Equal(t, http.StatusBadGateway, decodeErr.Status)
	assert.Contains(t, string(decodeErr.Body), "upstream exploded")
	assert.False(t, IsNotFound(e))
}

func TestDecodeErrorOnMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data": "not-a-list"`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	_, e := client.Devices(DeviceQuery{})
	require.Error(t, e)

	var decodeErr *DecodeError
	assert.True(t, errors.As(e, &decodeErr))
}

func TestTokenReusedWhileFresh(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		io.WriteString(w, `{"data":[],"links":{"self":"x"},"meta":{"paging":{"total":0,"limit":20}}}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	_, e := client.Devices(DeviceQuery{})
	require.NoError(t, e)
	_, e = client.Profiles(ProfileQuery{})
	require.NoError(t, e)

	require.Len(t, headers, 2)
	assert.Equal(t, headers[0], headers[1])
}

func TestStaleTokenResigned(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		io.WriteString(w, `{"data":[],"links":{"self":"x"},"meta":{"paging":{"total":0,"limit":20}}}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	_, e := client.Devices(DeviceQuery{})
	require.NoError(t, e)

	// age the cached token into the early-retire window
	client.mu.Lock()
	client.cached.ExpiresAt = time.Now().Add(time.Minute)
	client.mu.Unlock()

	_, e = client.Devices(DeviceQuery{})
	require.NoError(t, e)

	require.Len(t, headers, 2)
	assert.NotEqual(t, headers[0], headers[1])
}

func TestDevicesByURLFollowsNextPage(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"data":[],"links":{"self":"x"},"meta":{"paging":{"total":0,"limit":20}}}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	_, e := client.DevicesByURL(server.URL + "/v1/devices?cursor=AMg.HLrvSdg&limit=20")
	require.NoError(t, e)
	assert.Equal(t, "cursor=AMg.HLrvSdg&limit=20", gotQuery)
}

func TestRevokeCertificateNoContent(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	require.NoError(t, client.RevokeCertificate("C9"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/certificates/C9", gotPath)
}

func TestModifyUserPatch(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"data":{"type":"users","id":"U1","attributes":{"username":"dev@example.com","firstName":"Dev","lastName":"One","roles":["DEVELOPER"]},"links":{"self":"x"}},"links":{"self":"x"}}`)
	}))
	defer server.Close()
	client := newTestClient(t, server)

	entity, e := client.ModifyUser("U1", beans.NewUserUpdateRequest("U1", beans.UserUpdateRequestAttributes{
		Roles: []string{beans.UserRole_Developer},
	}))
	require.NoError(t, e)

	assert.Equal(t, http.MethodPatch, gotMethod)
	require.NotNil(t, gotBody["data"])
	data := gotBody["data"].(map[string]any)
	assert.Equal(t, "users", data["type"])
	assert.Equal(t, "U1", data["id"])
	assert.Equal(t, "U1", entity.Data.Id)
}

func TestNewClientRejectsBadKey(t *testing.T) {
	_, e := NewClient(Config{IssuerID: "iss", KeyID: "kid", PrivateKey: []byte("not a key")})
	require.Error(t, e)

	var invalidKey *token.InvalidKeyError
	assert.True(t, errors.As(e, &invalidKey))
}

func TestTransportError(t *testing.T) {
	client, e := NewClient(testConfig(t))
	require.NoError(t, e)
	// a closed server port, the dial must fail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client.ServiceURL = server.URL + "/v1/"

	_, e = client.Devices(DeviceQuery{})
	require.Error(t, e)

	var transportErr *TransportError
	assert.True(t, errors.As(e, &transportErr))
}
