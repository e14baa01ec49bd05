package beans

// Envelopes shared by every App Store Connect resource.
// https://developer.apple.com/documentation/appstoreconnectapi

type SelfLinks struct {
	Self string `json:"self"`
}

type MetaLinks struct {
	Self    string `json:"self"`
	Related string `json:"related"`
}

type Paging struct {
	Total int64 `json:"total"`
	Limit int64 `json:"limit"`
}

type PageMeta struct {
	Paging Paging `json:"paging"`
}

type PageLinks struct {
	Self  string `json:"self"`
	Next  string `json:"next,omitempty"`
	First string `json:"first,omitempty"`
}

// EntityResponse wraps a single resource document.
type EntityResponse[T any] struct {
	Data  T         `json:"data"`
	Links SelfLinks `json:"links"`
}

// PageResponse wraps a list document. Links.Next carries the URL of the
// following page when the server has more data; callers feed it back to the
// matching *ByURL operation.
type PageResponse[T any] struct {
	Data  []T       `json:"data"`
	Links PageLinks `json:"links"`
	Meta  PageMeta  `json:"meta"`
}

// Related is a relationship entry that only carries link metadata.
type Related struct {
	Links MetaLinks `json:"links"`
}

// RelatedPage is a relationship entry with paging metadata.
type RelatedPage struct {
	Meta  PageMeta  `json:"meta"`
	Links MetaLinks `json:"links"`
}

// Ref identifies a resource inside a relationship payload.
type Ref struct {
	Type string `json:"type"`
	Id   string `json:"id"`
}

type RefData struct {
	Data Ref `json:"data"`
}

type RefListData struct {
	Data []Ref `json:"data"`
}

// ServiceError is one entry of the error envelope the API returns on non-2xx
// statuses.
type ServiceError struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type ErrorResponse struct {
	Errors []ServiceError `json:"errors"`
}
