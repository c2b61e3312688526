package query

import (
	"strings"

	"github.com/BigVig29/GeoJobSearch/internal/model"
)

// Predicate is a single condition over a job.
type Predicate interface {
	Match(job model.Job) bool
	Clause() (string, []any)
}

// MatchAll reports whether job satisfies every predicate. An empty list
// matches everything.
func MatchAll(job model.Job, preds ...Predicate) bool {
	for _, p := range preds {
		if !p.Match(job) {
			return false
		}
	}
	return true
}

// Select returns the jobs satisfying every predicate, in their original order.
func Select(jobs []model.Job, preds ...Predicate) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if MatchAll(j, preds...) {
			out = append(out, j)
		}
	}
	return out
}

type textEquals struct {
	column string
	value  string
	field  func(model.Job) string
}

func (p textEquals) Match(job model.Job) bool {
	return p.field(job) == p.value
}

func (p textEquals) Clause() (string, []any) {
	return p.column + " = ?", []any{p.value}
}

// LocationIs matches jobs whose location equals location exactly.
func LocationIs(location string) Predicate {
	return textEquals{column: "jobs.location", value: location, field: func(j model.Job) string { return j.Location }}
}

// JobTypeIs matches jobs whose job type equals jobType exactly.
func JobTypeIs(jobType string) Predicate {
	return textEquals{column: "jobs.job_type", value: jobType, field: func(j model.Job) string { return j.JobType }}
}

type salaryBound struct {
	value float64
	upper bool
}

// A job without a salary never satisfies a bound, matching SQL NULL comparison.
func (p salaryBound) Match(job model.Job) bool {
	if job.Salary == nil {
		return false
	}
	if p.upper {
		return *job.Salary <= p.value
	}
	return *job.Salary >= p.value
}

func (p salaryBound) Clause() (string, []any) {
	if p.upper {
		return "jobs.salary <= ?", []any{p.value}
	}
	return "jobs.salary >= ?", []any{p.value}
}

// SalaryAtLeast matches jobs with salary >= bound.
func SalaryAtLeast(bound float64) Predicate {
	return salaryBound{value: bound}
}

// SalaryAtMost matches jobs with salary <= bound.
func SalaryAtMost(bound float64) Predicate {
	return salaryBound{value: bound, upper: true}
}

// Conjunction renders preds as a single AND-ed SQL condition. Empty input
// renders as an always-true condition.
func Conjunction(preds ...Predicate) (string, []any) {
	if len(preds) == 0 {
		return "1 = 1", nil
	}
	parts := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		sql, a := p.Clause()
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	return strings.Join(parts, " AND "), args
}
