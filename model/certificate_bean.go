package beans

// Certificate types accepted by the certificates endpoint.
// IOS_DEVELOPMENT IOS_DISTRIBUTION MAC_APP_DISTRIBUTION MAC_INSTALLER_DISTRIBUTION
// MAC_APP_DEVELOPMENT DEVELOPER_ID_KEXT DEVELOPER_ID_APPLICATION DEVELOPMENT
// DISTRIBUTION PASS_TYPE_ID PASS_TYPE_ID_WITH_NFC
const (
	CertificateType_IosDevelopment           = "IOS_DEVELOPMENT"
	CertificateType_IosDistribution          = "IOS_DISTRIBUTION"
	CertificateType_MacAppDistribution       = "MAC_APP_DISTRIBUTION"
	CertificateType_MacInstallerDistribution = "MAC_INSTALLER_DISTRIBUTION"
	CertificateType_MacAppDevelopment        = "MAC_APP_DEVELOPMENT"
	CertificateType_DeveloperIdKext          = "DEVELOPER_ID_KEXT"
	CertificateType_DeveloperIdApplication   = "DEVELOPER_ID_APPLICATION"
	CertificateType_Development              = "DEVELOPMENT"
	CertificateType_Distribution             = "DISTRIBUTION"
	CertificateType_PassTypeId               = "PASS_TYPE_ID"
	CertificateType_PassTypeIdWithNfc        = "PASS_TYPE_ID_WITH_NFC"
)

type CertificateBean struct {
	Type       string                `json:"type"`
	Id         string                `json:"id"`
	Attributes CertificateAttributes `json:"attributes"`
	Links      SelfLinks             `json:"links"`
}

type CertificateAttributes struct {
	SerialNumber string `json:"serialNumber"`
	//base64 encoded DER, see util.CertificateContentToPEM
	CertificateContent string `json:"certificateContent"`
	DisplayName        string `json:"displayName"`
	Name               string `json:"name"`
	CsrContent         any    `json:"csrContent"` //null on reads
	Platform           string `json:"platform,omitempty"`
	ExpirationDate     string `json:"expirationDate"`
	CertificateType    string `json:"certificateType"`
}

type CertificateCreateRequest struct {
	Data CertificateCreateRequestData `json:"data"`
}

type CertificateCreateRequestData struct {
	Type       string                             `json:"type"` //always "certificates"
	Attributes CertificateCreateRequestAttributes `json:"attributes"`
}

type CertificateCreateRequestAttributes struct {
	CertificateType string `json:"certificateType"`
	//PEM text of the signing request, header and footer lines included
	CsrContent string `json:"csrContent"`
}

func NewCertificateCreateRequest(certificateType string, csrContent string) CertificateCreateRequest {
	return CertificateCreateRequest{
		Data: CertificateCreateRequestData{
			Type: "certificates",
			Attributes: CertificateCreateRequestAttributes{
				CertificateType: certificateType,
				CsrContent:      csrContent,
			},
		},
	}
}
