package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workforcehq/workforce-api/internal/repository"
)

func TestSequenceServiceMonotonic(t *testing.T) {
	db, err := openTestDB()
	require.NoError(t, err)

	service := NewSequenceService(repository.NewSequenceRepository(db))

	var last int64
	for i := 0; i < 5; i++ {
		next, err := service.Next("test_sequence")
		require.NoError(t, err)
		require.Greater(t, next, last)
		last = next
	}
	require.Equal(t, int64(5), last)
}

func TestSequenceServiceIndependentCounters(t *testing.T) {
	db, err := openTestDB()
	require.NoError(t, err)

	service := NewSequenceService(repository.NewSequenceRepository(db))

	for i := int64(1); i <= 3; i++ {
		next, err := service.Next("first_sequence")
		require.NoError(t, err)
		require.Equal(t, i, next)
	}

	next, err := service.Next("second_sequence")
	require.NoError(t, err)
	require.Equal(t, int64(1), next)
}
