package connect

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is one query key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params keeps query parameters in the order they were supplied.
// url.Values would sort keys, so encoding is done here.
type Params []Param

func (p Params) Add(key string, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

func (p Params) AddInt(key string, value int64) Params {
	return append(p, Param{Key: key, Value: strconv.FormatInt(value, 10)})
}

// Encode renders the pairs as a percent-encoded query string, brackets in
// filter keys included: filter[name] -> filter%5Bname%5D.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

/*
Typed queries for the list endpoints. Zero values emit nothing; set fields
emit their parameter in the declared order. Sort values take the API's
literal forms ("name", "-name", ...), filter values the enum constants from
the beans package.
*/

type DeviceQuery struct {
	FieldsDevices  string
	FilterId       string
	FilterName     string
	FilterPlatform string
	FilterStatus   string
	FilterUdid     string
	Limit          int64
	Sort           string
}

func (q DeviceQuery) Params() Params {
	var p Params
	if q.FieldsDevices != "" {
		p = p.Add("fields[devices]", q.FieldsDevices)
	}
	if q.FilterId != "" {
		p = p.Add("filter[id]", q.FilterId)
	}
	if q.FilterName != "" {
		p = p.Add("filter[name]", q.FilterName)
	}
	if q.FilterPlatform != "" {
		p = p.Add("filter[platform]", q.FilterPlatform)
	}
	if q.FilterStatus != "" {
		p = p.Add("filter[status]", q.FilterStatus)
	}
	if q.FilterUdid != "" {
		p = p.Add("filter[udid]", q.FilterUdid)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}

type BundleIDQuery struct {
	FieldsBundleIds  string
	FieldsProfiles   string
	FilterId         string
	FilterIdentifier string
	FilterName       string
	FilterPlatform   string
	FilterSeedId     string
	Include          string
	Limit            int64
	LimitProfiles    int64
	Sort             string
}

func (q BundleIDQuery) Params() Params {
	var p Params
	if q.FieldsBundleIds != "" {
		p = p.Add("fields[bundleIds]", q.FieldsBundleIds)
	}
	if q.FieldsProfiles != "" {
		p = p.Add("fields[profiles]", q.FieldsProfiles)
	}
	if q.FilterId != "" {
		p = p.Add("filter[id]", q.FilterId)
	}
	if q.FilterIdentifier != "" {
		p = p.Add("filter[identifier]", q.FilterIdentifier)
	}
	if q.FilterName != "" {
		p = p.Add("filter[name]", q.FilterName)
	}
	if q.FilterPlatform != "" {
		p = p.Add("filter[platform]", q.FilterPlatform)
	}
	if q.FilterSeedId != "" {
		p = p.Add("filter[seedId]", q.FilterSeedId)
	}
	if q.Include != "" {
		p = p.Add("include", q.Include)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.LimitProfiles > 0 {
		p = p.AddInt("limit[profiles]", q.LimitProfiles)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}

type CertificateQuery struct {
	FieldsCertificates    string
	FilterId              string
	FilterSerialNumber    string
	FilterCertificateType string
	FilterDisplayName     string
	Limit                 int64
	Sort                  string
}

func (q CertificateQuery) Params() Params {
	var p Params
	if q.FieldsCertificates != "" {
		p = p.Add("fields[certificates]", q.FieldsCertificates)
	}
	if q.FilterId != "" {
		p = p.Add("filter[id]", q.FilterId)
	}
	if q.FilterSerialNumber != "" {
		p = p.Add("filter[serialNumber]", q.FilterSerialNumber)
	}
	if q.FilterCertificateType != "" {
		p = p.Add("filter[certificateType]", q.FilterCertificateType)
	}
	if q.FilterDisplayName != "" {
		p = p.Add("filter[displayName]", q.FilterDisplayName)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}

type ProfileQuery struct {
	FieldsProfiles     string
	FieldsCertificates string
	FieldsDevices      string
	FieldsBundleIds    string
	FilterId           string
	FilterName         string
	FilterProfileState string
	FilterProfileType  string
	Include            string
	Limit              int64
	LimitCertificates  int64
	LimitDevices       int64
	Sort               string
}

func (q ProfileQuery) Params() Params {
	var p Params
	if q.FieldsProfiles != "" {
		p = p.Add("fields[profiles]", q.FieldsProfiles)
	}
	if q.FieldsCertificates != "" {
		p = p.Add("fields[certificates]", q.FieldsCertificates)
	}
	if q.FieldsDevices != "" {
		p = p.Add("fields[devices]", q.FieldsDevices)
	}
	if q.FieldsBundleIds != "" {
		p = p.Add("fields[bundleIds]", q.FieldsBundleIds)
	}
	if q.FilterId != "" {
		p = p.Add("filter[id]", q.FilterId)
	}
	if q.FilterName != "" {
		p = p.Add("filter[name]", q.FilterName)
	}
	if q.FilterProfileState != "" {
		p = p.Add("filter[profileState]", q.FilterProfileState)
	}
	if q.FilterProfileType != "" {
		p = p.Add("filter[profileType]", q.FilterProfileType)
	}
	if q.Include != "" {
		p = p.Add("include", q.Include)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.LimitCertificates > 0 {
		p = p.AddInt("limit[certificates]", q.LimitCertificates)
	}
	if q.LimitDevices > 0 {
		p = p.AddInt("limit[devices]", q.LimitDevices)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}

type UsersQuery struct {
	FieldsUsers    string
	FilterRoles    string
	FilterUsername string
	Include        string
	Limit          int64
	Sort           string
}

func (q UsersQuery) Params() Params {
	var p Params
	if q.FieldsUsers != "" {
		p = p.Add("fields[users]", q.FieldsUsers)
	}
	if q.FilterRoles != "" {
		p = p.Add("filter[roles]", q.FilterRoles)
	}
	if q.FilterUsername != "" {
		p = p.Add("filter[username]", q.FilterUsername)
	}
	if q.Include != "" {
		p = p.Add("include", q.Include)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}

type UserVisibleAppsQuery struct {
	FieldsApps string
	Limit      int64
}

func (q UserVisibleAppsQuery) Params() Params {
	var p Params
	if q.FieldsApps != "" {
		p = p.Add("fields[apps]", q.FieldsApps)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	return p
}

type AppsQuery struct {
	FieldsApps     string
	FilterBundleId string
	FilterName     string
	FilterSku      string
	Limit          int64
	Sort           string
}

func (q AppsQuery) Params() Params {
	var p Params
	if q.FieldsApps != "" {
		p = p.Add("fields[apps]", q.FieldsApps)
	}
	if q.FilterBundleId != "" {
		p = p.Add("filter[bundleId]", q.FilterBundleId)
	}
	if q.FilterName != "" {
		p = p.Add("filter[name]", q.FilterName)
	}
	if q.FilterSku != "" {
		p = p.Add("filter[sku]", q.FilterSku)
	}
	if q.Limit > 0 {
		p = p.AddInt("limit", q.Limit)
	}
	if q.Sort != "" {
		p = p.Add("sort", q.Sort)
	}
	return p
}
