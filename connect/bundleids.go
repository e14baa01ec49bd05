package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_bundle_ids

func (c *Client) BundleIDs(query BundleIDQuery) (*beans.PageResponse[beans.BundleIDBean], error) {
	return requestEntity[beans.PageResponse[beans.BundleIDBean]](c, http.MethodGet, c.ServiceURL+"bundleIds", query.Params(), nil)
}

func (c *Client) BundleIDsByURL(urlStr string) (*beans.PageResponse[beans.BundleIDBean], error) {
	return requestEntity[beans.PageResponse[beans.BundleIDBean]](c, http.MethodGet, urlStr, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/register_a_new_bundle_id

func (c *Client) RegisterBundleID(request beans.BundleIDCreateRequest) (*beans.EntityResponse[beans.BundleIDBean], error) {
	return requestEntity[beans.EntityResponse[beans.BundleIDBean]](c, http.MethodPost, c.ServiceURL+"bundleIds", nil, request)
}

// https://developer.apple.com/documentation/appstoreconnectapi/list_all_capabilities_for_a_bundle_id

func (c *Client) BundleIDCapabilities(bundleIDId string) (*beans.PageResponse[beans.BundleIDCapabilityBean], error) {
	return requestEntity[beans.PageResponse[beans.BundleIDCapabilityBean]](c, http.MethodGet, c.ServiceURL+"bundleIds/"+bundleIDId+"/bundleIdCapabilities", nil, nil)
}
