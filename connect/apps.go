package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_apps

func (c *Client) Apps(query AppsQuery) (*beans.PageResponse[beans.AppBean], error) {
	return requestEntity[beans.PageResponse[beans.AppBean]](c, http.MethodGet, c.ServiceURL+"apps", query.Params(), nil)
}
