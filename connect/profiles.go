package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_and_download_profiles

func (c *Client) Profiles(query ProfileQuery) (*beans.PageResponse[beans.ProfileBean], error) {
	return requestEntity[beans.PageResponse[beans.ProfileBean]](c, http.MethodGet, c.ServiceURL+"profiles", query.Params(), nil)
}

func (c *Client) ProfilesByURL(urlStr string) (*beans.PageResponse[beans.ProfileBean], error) {
	return requestEntity[beans.PageResponse[beans.ProfileBean]](c, http.MethodGet, urlStr, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/create_a_profile

func (c *Client) CreateProfile(request beans.ProfileCreateRequest) (*beans.EntityResponse[beans.ProfileBean], error) {
	return requestEntity[beans.EntityResponse[beans.ProfileBean]](c, http.MethodPost, c.ServiceURL+"profiles", nil, request)
}

// https://developer.apple.com/documentation/appstoreconnectapi/delete_a_profile

func (c *Client) DeleteProfile(profileId string) error {
	return requestNoBody(c, http.MethodDelete, c.ServiceURL+"profiles/"+profileId, nil, nil)
}
