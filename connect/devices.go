package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_devices

func (c *Client) Devices(query DeviceQuery) (*beans.PageResponse[beans.DeviceBean], error) {
	return requestEntity[beans.PageResponse[beans.DeviceBean]](c, http.MethodGet, c.ServiceURL+"devices", query.Params(), nil)
}

// DevicesByURL fetches an explicit page URL, typically Links.Next of a
// previous response. Paging is never followed automatically.
func (c *Client) DevicesByURL(urlStr string) (*beans.PageResponse[beans.DeviceBean], error) {
	return requestEntity[beans.PageResponse[beans.DeviceBean]](c, http.MethodGet, urlStr, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/register_a_new_device

func (c *Client) RegisterDevice(request beans.DeviceCreateRequest) (*beans.EntityResponse[beans.DeviceBean], error) {
	return requestEntity[beans.EntityResponse[beans.DeviceBean]](c, http.MethodPost, c.ServiceURL+"devices", nil, request)
}
