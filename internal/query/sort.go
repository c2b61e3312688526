package query

import (
	"sort"

	"github.com/BigVig29/GeoJobSearch/internal/model"
)

type SortKey string

const (
	SortNone   SortKey = ""
	SortSalary SortKey = "salary"
	SortDate   SortKey = "date"
)

// ParseSortKey maps "salary" and "date" to their keys. Anything else,
// including the empty string, means unsorted.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortSalary:
		return SortSalary
	case SortDate:
		return SortDate
	default:
		return SortNone
	}
}

// OrderBy is the SQL ORDER BY expression for the key, or "" for SortNone.
// Rows missing the sort column go last.
func (s SortKey) OrderBy() string {
	switch s {
	case SortSalary:
		return "jobs.salary DESC NULLS LAST, jobs.job_id"
	case SortDate:
		return "jobs.date DESC NULLS LAST, jobs.job_id"
	default:
		return ""
	}
}

// SortJobs orders jobs in place the same way OrderBy does.
func SortJobs(jobs []model.Job, key SortKey) {
	var less func(a, b model.Job) bool
	switch key {
	case SortSalary:
		less = func(a, b model.Job) bool {
			if a.Salary == nil || b.Salary == nil {
				return a.Salary != nil && b.Salary == nil
			}
			return *a.Salary > *b.Salary
		}
	case SortDate:
		less = func(a, b model.Job) bool {
			if a.Date == nil || b.Date == nil {
				return a.Date != nil && b.Date == nil
			}
			return a.Date.After(*b.Date)
		}
	default:
		return
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}
