package query_test

import (
	"testing"

	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestBucketRange(t *testing.T) {
	cases := []struct {
		salary float64
		want   query.SalaryRange
	}{
		{0, query.SalaryRange{Min: 0, Max: 49999}},
		{49999.99, query.SalaryRange{Min: 0, Max: 49999}},
		{50000, query.SalaryRange{Min: 50000, Max: 99999}},
		{124999, query.SalaryRange{Min: 100000, Max: 149999}},
		{150000, query.SalaryRange{Min: 150000, Max: 199999}},
		{-1, query.SalaryRange{Min: -50000, Max: -1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, query.BucketRange(query.BucketIndex(tc.salary)), "salary %v", tc.salary)
	}
}

func TestCountBy(t *testing.T) {
	jobs := []model.Job{
		job(1, "A", "X", "FT", nil),
		job(2, "B", "X", "PT", nil),
		job(3, "C", "Y", "FT", nil),
	}
	assert.Equal(t,
		[]query.GroupCount{{Key: "X", Count: 2}, {Key: "Y", Count: 1}},
		query.CountBy(jobs, query.GroupLocation))
	assert.Equal(t,
		[]query.GroupCount{{Key: "FT", Count: 2}, {Key: "PT", Count: 1}},
		query.CountBy(jobs, query.GroupJobType))
	assert.Empty(t, query.CountBy(nil, query.GroupLocation))
}

func TestCountBySalaryBucket_SkipsMissingSalary(t *testing.T) {
	jobs := []model.Job{
		job(1, "A", "X", "FT", floatPtr(160000)),
		job(2, "B", "X", "PT", floatPtr(0)),
		job(3, "C", "Y", "FT", nil),
		job(4, "D", "Y", "FT", floatPtr(199999)),
	}
	got := query.CountBySalaryBucket(jobs)
	assert.Equal(t, []query.BucketCount{{Index: 0, Count: 1}, {Index: 3, Count: 2}}, got)
	assert.Equal(t, query.SalaryRange{Min: 150000, Max: 199999}, got[1].Range())
}

func TestGroupFieldColumn(t *testing.T) {
	assert.Equal(t, "jobs.location", query.GroupLocation.Column())
	assert.Equal(t, "jobs.job_type", query.GroupJobType.Column())
}
