package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_and_download_certificates

func (c *Client) Certificates(query CertificateQuery) (*beans.PageResponse[beans.CertificateBean], error) {
	return requestEntity[beans.PageResponse[beans.CertificateBean]](c, http.MethodGet, c.ServiceURL+"certificates", query.Params(), nil)
}

func (c *Client) CertificatesByURL(urlStr string) (*beans.PageResponse[beans.CertificateBean], error) {
	return requestEntity[beans.PageResponse[beans.CertificateBean]](c, http.MethodGet, urlStr, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/create_a_certificate

func (c *Client) CreateCertificate(request beans.CertificateCreateRequest) (*beans.EntityResponse[beans.CertificateBean], error) {
	return requestEntity[beans.EntityResponse[beans.CertificateBean]](c, http.MethodPost, c.ServiceURL+"certificates", nil, request)
}

// https://developer.apple.com/documentation/appstoreconnectapi/revoke_a_certificate

func (c *Client) RevokeCertificate(certificateId string) error {
	return requestNoBody(c, http.MethodDelete, c.ServiceURL+"certificates/"+certificateId, nil, nil)
}
