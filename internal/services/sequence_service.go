package services

import (
	"fmt"

	"github.com/workforcehq/workforce-api/internal/constants"
	"github.com/workforcehq/workforce-api/internal/repository"
)

// SequenceService allocates entity ids from named counters. Values are
// monotonically increasing per counter name; atomicity under concurrent
// callers is delegated to the store's increment-and-fetch.
type SequenceService struct {
	sequenceRepo repository.SequenceRepository
}

// NewSequenceService creates a new SequenceService.
func NewSequenceService(sequenceRepo repository.SequenceRepository) *SequenceService {
	return &SequenceService{sequenceRepo: sequenceRepo}
}

// Next returns the next value of the named counter.
func (s *SequenceService) Next(name string) (int64, error) {
	seq, err := s.sequenceRepo.Increment(name)
	if err != nil {
		return 0, fmt.Errorf("failed to generate sequence %q: %w", name, err)
	}
	return seq, nil
}

// normalizePage fills in the defaults for a page request: first page,
// default limit, the entity's default sort key, ascending order.
func normalizePage(pr repository.PageRequest, defaultSortBy string) repository.PageRequest {
	if pr.Index < 1 {
		pr.Index = 1
	}
	if pr.Limit < 1 {
		pr.Limit = constants.DefaultPageSize
	}
	if pr.SortBy == "" {
		pr.SortBy = defaultSortBy
	}
	if pr.SortType == "" {
		pr.SortType = "asc"
	}
	return pr
}
