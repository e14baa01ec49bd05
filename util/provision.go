package util

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"howett.net/plist"
)

// MobileProvision is the plist payload embedded in a .mobileprovision file,
// i.e. the decoded profileContent attribute of a profile.
type MobileProvision struct {
	Name                 string         `plist:"Name"`
	AppIDName            string         `plist:"AppIDName"`
	TeamName             string         `plist:"TeamName"`
	TeamIdentifier       []string       `plist:"TeamIdentifier"`
	UUID                 string         `plist:"UUID"`
	CreationDate         time.Time      `plist:"CreationDate"`
	ExpirationDate       time.Time      `plist:"ExpirationDate"`
	Platform             []string       `plist:"Platform"`
	ProvisionedDevices   []string       `plist:"ProvisionedDevices"`
	ProvisionsAllDevices bool           `plist:"ProvisionsAllDevices"`
	Entitlements         map[string]any `plist:"Entitlements"`
}

var (
	plistHeader  = []byte("<?xml")
	plistTrailer = []byte("</plist>")
)

/*
ParseMobileProvision decodes the base64 profileContent attribute and parses
the provisioning plist out of it. The payload is a CMS signature wrapping an
XML plist; rather than pulling in a full CMS parser the plist is located by
its header and trailer, which is how every signing tool reads these files.
*/
func ParseMobileProvision(profileContent string) (*MobileProvision, error) {
	raw, e := base64.StdEncoding.DecodeString(profileContent)
	if e != nil {
		return nil, fmt.Errorf("profile content is not base64: %w", e)
	}
	return ParseMobileProvisionData(raw)
}

// ParseMobileProvisionData parses raw .mobileprovision bytes, as read from
// disk or decoded from profileContent.
func ParseMobileProvisionData(raw []byte) (*MobileProvision, error) {
	start := bytes.Index(raw, plistHeader)
	end := bytes.LastIndex(raw, plistTrailer)
	if start < 0 || end < start {
		return nil, fmt.Errorf("no plist payload found in %d bytes of profile data", len(raw))
	}
	payload := raw[start : end+len(plistTrailer)]
	var provision MobileProvision
	if _, e := plist.Unmarshal(payload, &provision); e != nil {
		return nil, fmt.Errorf("parse provisioning plist: %w", e)
	}
	return &provision, nil
}
