package query

import (
	"strings"

	"github.com/BigVig29/GeoJobSearch/internal/model"
)

// MaxKeywords is how many search terms are honoured. Anything after the third
// whitespace-separated word is ignored.
const MaxKeywords = 3

var keywordColumns = []string{"jobs.title", "jobs.description", "jobs.company"}

// Keywords is a lower-cased list of at most MaxKeywords search terms. A job
// matches when any term is a substring of its title, description or company.
type Keywords []string

func ParseKeywords(search string) Keywords {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) > MaxKeywords {
		terms = terms[:MaxKeywords]
	}
	if len(terms) == 0 {
		return nil
	}
	return Keywords(terms)
}

func (k Keywords) Empty() bool {
	return len(k) == 0
}

// Match is true for every job when k is empty.
func (k Keywords) Match(job model.Job) bool {
	if k.Empty() {
		return true
	}
	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)
	company := strings.ToLower(job.Company)
	for _, term := range k {
		if strings.Contains(title, term) || strings.Contains(description, term) || strings.Contains(company, term) {
			return true
		}
	}
	return false
}

// Clause renders k as one OR-group over every term and text column.
func (k Keywords) Clause() (string, []any) {
	if k.Empty() {
		return "1 = 1", nil
	}
	parts := make([]string, 0, len(k)*len(keywordColumns))
	args := make([]any, 0, len(k)*len(keywordColumns))
	for _, term := range k {
		pattern := "%" + escapeLike(term) + "%"
		for _, col := range keywordColumns {
			parts = append(parts, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			args = append(args, pattern)
		}
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// FilterJobs keeps the jobs matching k without reordering them.
func FilterJobs(jobs []model.Job, k Keywords) []model.Job {
	if k.Empty() {
		return jobs
	}
	return Select(jobs, k)
}

// FilterJobLocations is FilterJobs for coordinate rows, matched on the job.
func FilterJobLocations(rows []model.JobLocation, k Keywords) []model.JobLocation {
	if k.Empty() {
		return rows
	}
	out := make([]model.JobLocation, 0, len(rows))
	for _, r := range rows {
		if k.Match(r.Job) {
			out = append(out, r)
		}
	}
	return out
}
