package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	filters := NewJobFilters()
	defer filters.Close()

	uids := filters.UseridList()
	assert.Zero(t, uids.Count())

	uids.Append("1000")
	uids.Append("1001")
	assert.Equal(t, 2, uids.Count())

	it := uids.Iter()
	defer it.Close()

	var got []string
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		got = append(got, s)
	}
	assert.Equal(t, []string{"1000", "1001"}, got)

	// Exhausted iterators stay exhausted.
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestNullListReadsLikeEmpty(t *testing.T) {
	filters := NewJobFilters()
	defer filters.Close()

	steps := filters.StepList()
	assert.Zero(t, steps.Count())

	it := steps.Iter()
	defer it.Close()
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestStepFilterListAppendTransfersOwnership(t *testing.T) {
	filters := NewJobFilters()
	defer filters.Close()

	f := NewJobStepFilter(42)
	filters.StepList().Append(f)

	// Ownership moved into the list; closing the original wrapper is a
	// harmless no-op.
	require.NoError(t, f.Close())

	steps := filters.StepList()
	require.Equal(t, 1, steps.Count())

	it := steps.Iter()
	defer it.Close()

	item, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, JobID(42), item.JobID())
	assert.Nil(t, item.StepID(), "a fresh filter matches every step")
}

func TestIteratorCloseIdempotent(t *testing.T) {
	filters := NewJobFilters()
	defer filters.Close()

	uids := filters.UseridList()
	uids.Append("1000")

	it := uids.Iter()
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestAppendToReadOnlyListPanics(t *testing.T) {
	results := &OwnedList[JobStepFilter]{}

	f := NewJobStepFilter(9)
	defer f.Close()

	assert.Panics(t, func() { results.View().Append(f) })
}

func TestNewJobFiltersDisablesUsageTruncation(t *testing.T) {
	// Matches sacct's reporting behavior: real start and end times, not
	// clamped to the usage window.
	filters := NewJobFilters()
	defer filters.Close()

	assert.EqualValues(t, 1, filters.c.without_usage_truncation)
}

func TestOwnedStepFilterCloseIdempotent(t *testing.T) {
	f := NewJobStepFilter(7)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestJobFiltersCloseIdempotent(t *testing.T) {
	filters := NewJobFilters()
	filters.UseridList().Append("1000")
	require.NoError(t, filters.Close())
	require.NoError(t, filters.Close())
}
