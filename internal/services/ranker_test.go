package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-job-screening/internal/models"
)

func rankerFixtureJobs() []models.JobPosting {
	return []models.JobPosting{
		{ID: 1, Title: "Backend Engineer", Summary: "s1"},
		{ID: 2, Title: "Platform Engineer", Summary: "s2"},
		{ID: 3, Title: "SRE", Summary: "s3"},
		{ID: 4, Title: "Accountant", Summary: "s4"},
	}
}

func TestRankerOrdersByScoreDescending(t *testing.T) {
	matcher := stubMatcher{scores: map[string]float64{
		"s1": 42.0,
		"s2": 87.0,
		"s3": 87.0,
		"s4": 10.0,
	}}
	ranker := NewRankerService(matcher, 4)

	ranked := ranker.Rank("resume text", rankerFixtureJobs())

	require.Len(t, ranked, 4)
	// Ties (jobs 2 and 3 at 87.0) resolve by ascending job id.
	assert.Equal(t, uint(2), ranked[0].JobID)
	assert.Equal(t, uint(3), ranked[1].JobID)
	assert.Equal(t, uint(1), ranked[2].JobID)
	assert.Equal(t, uint(4), ranked[3].JobID)
	assert.Equal(t, 87.0, ranked[0].Score)
	assert.Equal(t, "Platform Engineer", ranked[0].Title)
}

func TestRankerTieBreakIgnoresInputOrder(t *testing.T) {
	matcher := stubMatcher{scores: map[string]float64{"s1": 50.0, "s2": 50.0, "s3": 50.0, "s4": 50.0}}
	ranker := NewRankerService(matcher, 2)

	jobs := rankerFixtureJobs()
	// Shuffle the corpus; the output order must still be ascending job id.
	shuffled := []models.JobPosting{jobs[2], jobs[0], jobs[3], jobs[1]}

	ranked := ranker.Rank("resume text", shuffled)

	require.Len(t, ranked, 4)
	for i, want := range []uint{1, 2, 3, 4} {
		assert.Equal(t, want, ranked[i].JobID)
	}
}

func TestRankerSkipsJobsWithoutSummary(t *testing.T) {
	matcher := stubMatcher{scores: map[string]float64{"s1": 42.0}}
	ranker := NewRankerService(matcher, 4)

	jobs := []models.JobPosting{
		{ID: 1, Title: "Backend Engineer", Summary: "s1"},
		{ID: 2, Title: "No Summary Yet"},
	}

	ranked := ranker.Rank("resume text", jobs)

	require.Len(t, ranked, 1)
	assert.Equal(t, uint(1), ranked[0].JobID)
}

func TestRankerEmptyCorpus(t *testing.T) {
	ranker := NewRankerService(stubMatcher{}, 4)

	assert.Empty(t, ranker.Rank("resume text", nil))
	assert.Empty(t, ranker.Rank("resume text", []models.JobPosting{}))
}

func TestRankerTopKClamps(t *testing.T) {
	ranker := NewRankerService(stubMatcher{}, 1)

	ranked := []models.RankedMatch{
		{JobID: 2, Score: 87.0},
		{JobID: 1, Score: 42.0},
	}

	assert.Len(t, ranker.TopK(ranked, 1), 1)
	assert.Len(t, ranker.TopK(ranked, 2), 2)
	// Asking for more than available returns everything, no padding.
	assert.Len(t, ranker.TopK(ranked, 5), 2)
	assert.Empty(t, ranker.TopK(ranked, 0))
	assert.Empty(t, ranker.TopK(ranked, -3))
	assert.Empty(t, ranker.TopK(nil, 3))
}

func TestRankerTopKPreservesOrder(t *testing.T) {
	ranker := NewRankerService(stubMatcher{}, 1)

	ranked := []models.RankedMatch{
		{JobID: 2, Score: 87.0},
		{JobID: 3, Score: 87.0},
		{JobID: 1, Score: 42.0},
	}

	top := ranker.TopK(ranked, 2)
	require.Len(t, top, 2)
	assert.Equal(t, uint(2), top[0].JobID)
	assert.Equal(t, uint(3), top[1].JobID)
}
