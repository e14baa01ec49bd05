package connect

import (
	"net/http"

	beans "github.com/appuploader/appstore-connect-v3/model"
)

// https://developer.apple.com/documentation/appstoreconnectapi/list_users

func (c *Client) Users(query UsersQuery) (*beans.PageResponse[beans.UserBean], error) {
	return requestEntity[beans.PageResponse[beans.UserBean]](c, http.MethodGet, c.ServiceURL+"users", query.Params(), nil)
}

func (c *Client) UsersByURL(urlStr string) (*beans.PageResponse[beans.UserBean], error) {
	return requestEntity[beans.PageResponse[beans.UserBean]](c, http.MethodGet, urlStr, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/read_user_information

func (c *Client) GetUser(userId string) (*beans.EntityResponse[beans.UserBean], error) {
	return requestEntity[beans.EntityResponse[beans.UserBean]](c, http.MethodGet, c.ServiceURL+"users/"+userId, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/modify_a_user_account

func (c *Client) ModifyUser(userId string, request beans.UserUpdateRequest) (*beans.EntityResponse[beans.UserBean], error) {
	return requestEntity[beans.EntityResponse[beans.UserBean]](c, http.MethodPatch, c.ServiceURL+"users/"+userId, nil, request)
}

// https://developer.apple.com/documentation/appstoreconnectapi/remove_a_user_account

func (c *Client) RemoveUser(userId string) error {
	return requestNoBody(c, http.MethodDelete, c.ServiceURL+"users/"+userId, nil, nil)
}

// https://developer.apple.com/documentation/appstoreconnectapi/list_all_apps_visible_to_a_user

func (c *Client) UserVisibleApps(userId string, query UserVisibleAppsQuery) (*beans.PageResponse[beans.AppBean], error) {
	return requestEntity[beans.PageResponse[beans.AppBean]](c, http.MethodGet, c.ServiceURL+"users/"+userId+"/visibleApps", query.Params(), nil)
}
