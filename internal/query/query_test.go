package query_test

import (
	"time"

	"github.com/BigVig29/GeoJobSearch/internal/model"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func job(id int64, title, loc, jobType string, salary *float64) model.Job {
	return model.Job{
		ID:          id,
		Title:       title,
		Company:     "Acme",
		Location:    loc,
		JobType:     jobType,
		Description: "",
		Salary:      salary,
	}
}

func ids(jobs []model.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}
