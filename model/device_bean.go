package beans

import "time"

const (
	Platform_IOS       = "IOS"
	Platform_MACOS     = "MAC_OS"
	Platform_UNIVERSAL = "UNIVERSAL"
)

const (
	DeviceStatus_Enabled    = "ENABLED"
	DeviceStatus_Disabled   = "DISABLED"
	DeviceStatus_Processing = "PROCESSING"
	DeviceStatus_Ineligible = "INELIGIBLE"
)

type DeviceBean struct {
	Type       string           `json:"type"`
	Id         string           `json:"id"`
	Attributes DeviceAttributes `json:"attributes"`
	Links      SelfLinks        `json:"links"`
}

type DeviceAttributes struct {
	AddedDate   time.Time `json:"addedDate"` //"2022-12-10T12:02:45.000+00:00"
	Name        string    `json:"name"`
	DeviceClass string    `json:"deviceClass"`
	Model       string    `json:"model,omitempty"`
	Udid        string    `json:"udid"`
	Platform    string    `json:"platform"`
	Status      string    `json:"status"`
}

type DeviceCreateRequest struct {
	Data DeviceCreateRequestData `json:"data"`
}

type DeviceCreateRequestData struct {
	Type       string                        `json:"type"` //always "devices"
	Attributes DeviceCreateRequestAttributes `json:"attributes"`
}

type DeviceCreateRequestAttributes struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Udid     string `json:"udid"`
}

// NewDeviceCreateRequest fills the constant type discriminator.
func NewDeviceCreateRequest(name string, platform string, udid string) DeviceCreateRequest {
	return DeviceCreateRequest{
		Data: DeviceCreateRequestData{
			Type: "devices",
			Attributes: DeviceCreateRequestAttributes{
				Name:     name,
				Platform: platform,
				Udid:     udid,
			},
		},
	}
}
