package query

// Pagination defaults.
const (
	DefaultPage         = 1
	DefaultItemsPerPage = 20
)

// Params holds the inputs of a list query.
type Params struct {
	// Filters maps filter names to raw values. Unknown names are ignored.
	Filters map[string]string

	// Page is the 1-based page number. Values below 1 mean DefaultPage.
	Page int

	// ItemsPerPage is the page size. Values below 1 mean DefaultItemsPerPage.
	ItemsPerPage int
}

func (p Params) normalized() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.ItemsPerPage < 1 {
		p.ItemsPerPage = DefaultItemsPerPage
	}
	return p
}

// Metadata describes a list result.
type Metadata struct {
	// ItemsPerPage is the page size used for the query.
	ItemsPerPage int `json:"itemsPerPage"`

	// Page is the requested page number.
	Page int `json:"page"`

	// TotalItems is the number of records that matched the filters,
	// counted before slicing.
	TotalItems int `json:"totalItems"`

	// LastPage is ceil(TotalItems / ItemsPerPage).
	LastPage int `json:"lastPage"`
}

// NewMetadata computes pagination metadata. itemsPerPage must be positive.
func NewMetadata(page, itemsPerPage, totalItems int) Metadata {
	last := totalItems / itemsPerPage
	if totalItems%itemsPerPage != 0 {
		last++
	}
	return Metadata{
		ItemsPerPage: itemsPerPage,
		Page:         page,
		TotalItems:   totalItems,
		LastPage:     last,
	}
}

// Page is one page of a list result.
type Page[T any] struct {
	// Data holds the page's records. It is empty, never nil, for pages past
	// the end.
	Data []T `json:"data"`

	// Metadata describes the page.
	Metadata Metadata `json:"metadata"`
}
