package beans

const (
	UserRole_Admin               = "ADMIN"
	UserRole_Finance             = "FINANCE"
	UserRole_AccountHolder       = "ACCOUNT_HOLDER"
	UserRole_Sales               = "SALES"
	UserRole_Marketing           = "MARKETING"
	UserRole_AppManager          = "APP_MANAGER"
	UserRole_Developer           = "DEVELOPER"
	UserRole_AccessToReports     = "ACCESS_TO_REPORTS"
	UserRole_CustomerSupport     = "CUSTOMER_SUPPORT"
	UserRole_CreateApps          = "CREATE_APPS"
	UserRole_CloudManagedAppDist = "CLOUD_MANAGED_APP_DISTRIBUTION"
)

type UserBean struct {
	Type          string            `json:"type"`
	Id            string            `json:"id"`
	Attributes    UserAttributes    `json:"attributes"`
	Relationships UserRelationships `json:"relationships"`
	Links         SelfLinks         `json:"links"`
}

type UserAttributes struct {
	Username            string   `json:"username"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Roles               []string `json:"roles"`
	AllAppsVisible      bool     `json:"allAppsVisible"`
	ProvisioningAllowed bool     `json:"provisioningAllowed"`
}

type UserRelationships struct {
	VisibleApps RelatedPage `json:"visibleApps"`
}

type UserUpdateRequest struct {
	Data UserUpdateRequestData `json:"data"`
}

type UserUpdateRequestData struct {
	Type       string                      `json:"type"` //always "users"
	Id         string                      `json:"id"`
	Attributes UserUpdateRequestAttributes `json:"attributes"`
}

type UserUpdateRequestAttributes struct {
	Roles               []string `json:"roles,omitempty"`
	AllAppsVisible      *bool    `json:"allAppsVisible,omitempty"`
	ProvisioningAllowed *bool    `json:"provisioningAllowed,omitempty"`
}

func NewUserUpdateRequest(userId string, attributes UserUpdateRequestAttributes) UserUpdateRequest {
	return UserUpdateRequest{
		Data: UserUpdateRequestData{
			Type:       "users",
			Id:         userId,
			Attributes: attributes,
		},
	}
}
