package models

import "strconv"

// FilterAll disables a status or priority filter
const FilterAll = "all"

// ViewParams are the declarative parameters of one list screen
type ViewParams struct {
	SearchTerm     string `json:"search"`
	StatusFilter   string `json:"status"`
	PriorityFilter string `json:"priority"`
	SortKey        string `json:"sort"`
	Page           int    `json:"page"`
	PageSize       int    `json:"pageSize"`
}

// Normalized fills empty filters with "all" and clamps page and page size to at least 1
func (p ViewParams) Normalized() ViewParams {
	if p.StatusFilter == "" {
		p.StatusFilter = FilterAll
	}
	if p.PriorityFilter == "" {
		p.PriorityFilter = FilterAll
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 1
	}
	return p
}

// ListQuery is what a repository list operation sends to the backend
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	Priority string
	Extra    map[string]string
}

// Values renders the query as URL parameters, skipping empty values
func (q ListQuery) Values() map[string]string {
	out := make(map[string]string, len(q.Extra)+5)
	for k, v := range q.Extra {
		if v != "" {
			out[k] = v
		}
	}
	if q.Page > 0 {
		out["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		out["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Search != "" {
		out["search"] = q.Search
	}
	if q.Status != "" && q.Status != FilterAll {
		out["status"] = q.Status
	}
	if q.Priority != "" && q.Priority != FilterAll {
		out["priority"] = q.Priority
	}
	return out
}

// Page is the canonical list shape every repository normalizes to
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Projection is the filtered, sorted, paginated view of a resident collection
type Projection[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// TotalPagesFor returns ceil(total/size), 0 for an empty set
func TotalPagesFor(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
