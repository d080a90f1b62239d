package dto

import "github.com/workforcehq/workforce-api/internal/repository"

// Resource is the envelope returned by every paginated search.
type Resource[T any] struct {
	Data        []T    `json:"data"`
	SearchText  string `json:"search_text"`
	SortBy      string `json:"sort_by"`
	SortType    string `json:"sort_type"`
	Index       int    `json:"index"`
	Limit       int    `json:"limit"`
	TotalResult int64  `json:"total_result"`
	TotalPage   int    `json:"total_page"`
}

// NewResource builds a search envelope from one page of data and the
// request that produced it. TotalPage is ceil(total / limit).
func NewResource[T any](data []T, searchText string, pr repository.PageRequest, total int64) Resource[T] {
	totalPage := 0
	if pr.Limit > 0 {
		totalPage = int(total) / pr.Limit
		if int(total)%pr.Limit > 0 {
			totalPage++
		}
	}

	return Resource[T]{
		Data:        data,
		SearchText:  searchText,
		SortBy:      pr.SortBy,
		SortType:    pr.SortType,
		Index:       pr.Index,
		Limit:       pr.Limit,
		TotalResult: total,
		TotalPage:   totalPage,
	}
}
