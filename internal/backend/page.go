package backend

// ListQuery selects a page of a master-data collection. Zero Page means
// the backend default (first page). All requests the whole collection
// unpaged via ?all=true.
type ListQuery struct {
	Page  int
	Limit int
	All   bool
}

// Page is the paged response envelope the core service wraps list
// results in.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}
