package staff

const (
	// DefaultPageSize applies when a query does not name one
	DefaultPageSize = 10
	// MaxPageSize caps a single page
	MaxPageSize = 100
)

// EmployeePageQuery is a transient page request: 1-based page number, page
// size, and an optional name substring filter.
type EmployeePageQuery struct {
	Page     int    `json:"page" query:"page"`
	PageSize int    `json:"page_size" query:"page_size"`
	Name     string `json:"name" query:"name"`
}

// Normalize clamps the query to usable bounds
func (q EmployeePageQuery) Normalize() EmployeePageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset is the row offset for the normalized query
func (q EmployeePageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PageResult carries the total matching count plus the ordered slice for the
// requested page. Total reflects the full filtered set, not the page length.
type PageResult struct {
	Total   int         `json:"total"`
	Records []*Employee `json:"records"`
}
