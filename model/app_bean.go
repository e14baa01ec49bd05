package beans

type AppBean struct {
	Type       string        `json:"type"`
	Id         string        `json:"id"`
	Attributes AppAttributes `json:"attributes"`
	Links      SelfLinks     `json:"links"`
}

type AppAttributes struct {
	Name          string `json:"name"`
	BundleId      string `json:"bundleId"`
	Sku           string `json:"sku"`
	PrimaryLocale string `json:"primaryLocale"`
}
