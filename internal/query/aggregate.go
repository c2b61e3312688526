package query

import (
	"math"
	"sort"

	"github.com/BigVig29/GeoJobSearch/internal/model"
)

// SalaryBucketWidth is the width of one salary histogram bucket.
const SalaryBucketWidth = 50000

// GroupField is a job column that can be counted by distinct value.
type GroupField int

const (
	GroupLocation GroupField = iota
	GroupJobType
)

func (g GroupField) Column() string {
	switch g {
	case GroupJobType:
		return "jobs.job_type"
	default:
		return "jobs.location"
	}
}

func (g GroupField) Value(job model.Job) string {
	switch g {
	case GroupJobType:
		return job.JobType
	default:
		return job.Location
	}
}

type GroupCount struct {
	Key   string
	Count int64
}

// BucketCount is the number of jobs whose salary falls in bucket Index.
type BucketCount struct {
	Index int64
	Count int64
}

func (b BucketCount) Range() SalaryRange {
	return BucketRange(b.Index)
}

type SalaryRange struct {
	Min int64
	Max int64
}

// BucketIndex returns floor(salary / SalaryBucketWidth).
func BucketIndex(salary float64) int64 {
	return int64(math.Floor(salary / SalaryBucketWidth))
}

func BucketRange(index int64) SalaryRange {
	start := index * SalaryBucketWidth
	return SalaryRange{Min: start, Max: start + SalaryBucketWidth - 1}
}

// CountBy counts jobs per distinct value of field, ordered by value.
func CountBy(jobs []model.Job, field GroupField) []GroupCount {
	counts := make(map[string]int64)
	for _, j := range jobs {
		counts[field.Value(j)]++
	}
	out := make([]GroupCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, GroupCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CountBySalaryBucket counts jobs per salary bucket, ascending. Jobs without a
// salary belong to no bucket.
func CountBySalaryBucket(jobs []model.Job) []BucketCount {
	counts := make(map[int64]int64)
	for _, j := range jobs {
		if j.Salary == nil {
			continue
		}
		counts[BucketIndex(*j.Salary)]++
	}
	out := make([]BucketCount, 0, len(counts))
	for idx, c := range counts {
		out = append(out, BucketCount{Index: idx, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
