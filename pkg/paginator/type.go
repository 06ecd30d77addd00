package paginator

// PaginateQuery carries pagination parameters from the request.
type PaginateQuery struct {
	Page  int   `form:"page" json:"page"`
	Limit int64 `form:"limit" json:"limit"`
}

// Paginator describes one page of a result set.
type Paginator struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int64 `json:"per_page"`
}
