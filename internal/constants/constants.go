package constants

const (
	// DefaultPageIndex is the first page of a search result set.
	DefaultPageIndex = 1

	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 10

	// MaxPageSize caps the requested page size.
	MaxPageSize = 100
)
