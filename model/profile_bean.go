package beans

import "time"

const (
	ProfileState_Active  = "ACTIVE"
	ProfileState_Invalid = "INVALID"
)

const (
	ProfileType_IosAppDevelopment         = "IOS_APP_DEVELOPMENT"
	ProfileType_IosAppStore               = "IOS_APP_STORE"
	ProfileType_IosAppAdhoc               = "IOS_APP_ADHOC"
	ProfileType_IosAppInhouse             = "IOS_APP_INHOUSE"
	ProfileType_MacAppDevelopment         = "MAC_APP_DEVELOPMENT"
	ProfileType_MacAppStore               = "MAC_APP_STORE"
	ProfileType_MacAppDirect              = "MAC_APP_DIRECT"
	ProfileType_TvosAppDevelopment        = "TVOS_APP_DEVELOPMENT"
	ProfileType_TvosAppStore              = "TVOS_APP_STORE"
	ProfileType_TvosAppAdhoc              = "TVOS_APP_ADHOC"
	ProfileType_TvosAppInhouse            = "TVOS_APP_INHOUSE"
	ProfileType_MacCatalystAppDevelopment = "MAC_CATALYST_APP_DEVELOPMENT"
	ProfileType_MacCatalystAppStore       = "MAC_CATALYST_APP_STORE"
	ProfileType_MacCatalystAppDirect      = "MAC_CATALYST_APP_DIRECT"
)

type ProfileBean struct {
	Type          string               `json:"type"`
	Id            string               `json:"id"`
	Attributes    ProfileAttributes    `json:"attributes"`
	Relationships ProfileRelationships `json:"relationships"`
	Links         SelfLinks            `json:"links"`
}

type ProfileAttributes struct {
	ProfileState string    `json:"profileState"`
	CreatedDate  time.Time `json:"createdDate"`
	ProfileType  string    `json:"profileType"`
	Name         string    `json:"name"`
	//base64 encoded .mobileprovision, see util.ParseMobileProvision
	ProfileContent string    `json:"profileContent"`
	Uuid           string    `json:"uuid"`
	Platform       string    `json:"platform"`
	ExpirationDate time.Time `json:"expirationDate"`
}

type ProfileRelationships struct {
	BundleId     Related     `json:"bundleId"`
	Certificates RelatedPage `json:"certificates"`
	Devices      RelatedPage `json:"devices"`
}

type ProfileCreateRequest struct {
	Data ProfileCreateRequestData `json:"data"`
}

type ProfileCreateRequestData struct {
	Type          string                            `json:"type"` //always "profiles"
	Attributes    ProfileCreateRequestAttributes    `json:"attributes"`
	Relationships ProfileCreateRequestRelationships `json:"relationships"`
}

type ProfileCreateRequestAttributes struct {
	Name        string `json:"name"`
	ProfileType string `json:"profileType"`
}

type ProfileCreateRequestRelationships struct {
	BundleId     RefData      `json:"bundleId"`
	Certificates RefListData  `json:"certificates"`
	Devices      *RefListData `json:"devices,omitempty"`
}

// NewProfileCreateRequest wires the id references into the relationship
// envelope. deviceIDs may be empty for store/distribution profiles.
func NewProfileCreateRequest(name string, profileType string, bundleIDId string, certIDs []string, deviceIDs []string) ProfileCreateRequest {
	certs := make([]Ref, 0, len(certIDs))
	for _, id := range certIDs {
		certs = append(certs, Ref{Type: "certificates", Id: id})
	}
	relationships := ProfileCreateRequestRelationships{
		BundleId:     RefData{Data: Ref{Type: "bundleIds", Id: bundleIDId}},
		Certificates: RefListData{Data: certs},
	}
	if len(deviceIDs) > 0 {
		devices := make([]Ref, 0, len(deviceIDs))
		for _, id := range deviceIDs {
			devices = append(devices, Ref{Type: "devices", Id: id})
		}
		relationships.Devices = &RefListData{Data: devices}
	}
	return ProfileCreateRequest{
		Data: ProfileCreateRequestData{
			Type:          "profiles",
			Attributes:    ProfileCreateRequestAttributes{Name: name, ProfileType: profileType},
			Relationships: relationships,
		},
	}
}
