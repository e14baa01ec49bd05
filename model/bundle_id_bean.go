package beans

type BundleIDBean struct {
	Type          string                `json:"type"`
	Id            string                `json:"id"`
	Attributes    BundleIDAttributes    `json:"attributes"`
	Relationships BundleIDRelationships `json:"relationships"`
	Links         SelfLinks             `json:"links"`
}

type BundleIDAttributes struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Platform   string `json:"platform"`
	SeedId     string `json:"seedId"`
}

type BundleIDRelationships struct {
	BundleIdCapabilities RelatedPage `json:"bundleIdCapabilities"`
	Profiles             RelatedPage `json:"profiles"`
}

type BundleIDCreateRequest struct {
	Data BundleIDCreateRequestData `json:"data"`
}

type BundleIDCreateRequestData struct {
	Type       string                          `json:"type"` //always "bundleIds"
	Attributes BundleIDCreateRequestAttributes `json:"attributes"`
}

type BundleIDCreateRequestAttributes struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Platform   string `json:"platform"`
	SeedId     string `json:"seedId,omitempty"`
}

func NewBundleIDCreateRequest(name string, identifier string, platform string) BundleIDCreateRequest {
	return BundleIDCreateRequest{
		Data: BundleIDCreateRequestData{
			Type: "bundleIds",
			Attributes: BundleIDCreateRequestAttributes{
				Name:       name,
				Identifier: identifier,
				Platform:   platform,
			},
		},
	}
}

// BundleIDCapabilityBean comes back from the bundleIdCapabilities
// relationship endpoint.
type BundleIDCapabilityBean struct {
	Type       string                       `json:"type"`
	Id         string                       `json:"id"`
	Attributes BundleIDCapabilityAttributes `json:"attributes"`
	Links      SelfLinks                    `json:"links"`
}

type BundleIDCapabilityAttributes struct {
	CapabilityType string `json:"capabilityType"`
	Settings       any    `json:"settings"`
}
