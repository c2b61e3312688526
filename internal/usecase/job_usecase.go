package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
)

// JobStore is the read-only job data source. Implementations must push every
// predicate they are given into the query; an empty predicate list selects all
// jobs.
type JobStore interface {
	All(ctx context.Context) ([]model.Job, error)
	FindByID(ctx context.Context, id int64) (model.Job, error)
	FindByCity(ctx context.Context, city string) ([]model.Job, error)
	FindByLocation(ctx context.Context, location string) ([]model.Job, error)
	Find(ctx context.Context, sort query.SortKey, preds ...query.Predicate) ([]model.Job, error)
	CountBy(ctx context.Context, field query.GroupField, preds ...query.Predicate) ([]query.GroupCount, error)
	CountBySalaryBucket(ctx context.Context, preds ...query.Predicate) ([]query.BucketCount, error)
	FindWithCoordinates(ctx context.Context, preds ...query.Predicate) ([]model.JobLocation, error)
}

type JobUsecase struct {
	store JobStore
}

func NewJobUsecase(store JobStore) *JobUsecase {
	return &JobUsecase{store: store}
}

func (uc *JobUsecase) fail(op string, err error) error {
	log.Printf("[job] %s failed: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}

func (uc *JobUsecase) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	jobs, err := uc.store.All(ctx)
	if err != nil {
		return nil, uc.fail("get all jobs", err)
	}
	return jobs, nil
}

// GetJob returns model.ErrJobNotFound for an unknown id.
func (uc *JobUsecase) GetJob(ctx context.Context, id int64) (model.Job, error) {
	j, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return model.Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return j, nil
}

func (uc *JobUsecase) jobField(ctx context.Context, id int64, field func(model.Job) string) (string, error) {
	j, err := uc.GetJob(ctx, id)
	if err != nil {
		return "", err
	}
	return field(j), nil
}

func (uc *JobUsecase) GetJobTitle(ctx context.Context, id int64) (string, error) {
	return uc.jobField(ctx, id, func(j model.Job) string { return j.Title })
}

func (uc *JobUsecase) GetJobDescription(ctx context.Context, id int64) (string, error) {
	return uc.jobField(ctx, id, func(j model.Job) string { return j.Description })
}

func (uc *JobUsecase) GetJobURL(ctx context.Context, id int64) (string, error) {
	return uc.jobField(ctx, id, func(j model.Job) string { return j.JobURL })
}

func (uc *JobUsecase) GetJobLocation(ctx context.Context, id int64) (string, error) {
	return uc.jobField(ctx, id, func(j model.Job) string { return j.Location })
}

// GetJobSalary returns a nil salary when the job exists but has none recorded.
func (uc *JobUsecase) GetJobSalary(ctx context.Context, id int64) (*float64, error) {
	j, err := uc.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return j.Salary, nil
}

// FilterByCity returns every job when city is empty.
func (uc *JobUsecase) FilterByCity(ctx context.Context, city string) ([]model.Job, error) {
	if city == "" {
		return uc.GetAllJobs(ctx)
	}
	jobs, err := uc.store.FindByCity(ctx, city)
	if err != nil {
		return nil, uc.fail("filter by city", err)
	}
	return jobs, nil
}

func (uc *JobUsecase) FilterByLocation(ctx context.Context, location string) ([]model.Job, error) {
	jobs, err := uc.store.FindByLocation(ctx, location)
	if err != nil {
		return nil, uc.fail("filter by location", err)
	}
	return jobs, nil
}

func (uc *JobUsecase) FilterJobs(ctx context.Context, f query.Filter) ([]model.Job, error) {
	jobs, err := uc.store.Find(ctx, query.SortNone, f.Predicates()...)
	if err != nil {
		return nil, uc.fail("filter jobs", err)
	}
	return jobs, nil
}

// FilterJobsSearch pushes the keyword group down together with the base filter.
func (uc *JobUsecase) FilterJobsSearch(ctx context.Context, f query.Filter, search string) ([]model.Job, error) {
	jobs, err := uc.store.Find(ctx, query.SortNone, f.WithKeywords(query.ParseKeywords(search))...)
	if err != nil {
		return nil, uc.fail("filter jobs search", err)
	}
	return jobs, nil
}

// SearchJobs keyword-filters every job in memory. When nothing matches, all
// jobs are returned.
func (uc *JobUsecase) SearchJobs(ctx context.Context, search string) ([]model.Job, error) {
	all, err := uc.GetAllJobs(ctx)
	if err != nil {
		return nil, err
	}
	if matched := query.FilterJobs(all, query.ParseKeywords(search)); len(matched) > 0 {
		return matched, nil
	}
	return all, nil
}

// SortJobs sorts the filtered set in the store, then keyword-filters it in
// memory, which keeps the sorted order.
func (uc *JobUsecase) SortJobs(ctx context.Context, f query.Filter, search string, sortBy string) ([]model.Job, error) {
	jobs, err := uc.store.Find(ctx, query.ParseSortKey(sortBy), f.Predicates()...)
	if err != nil {
		return nil, uc.fail("sort jobs", err)
	}
	return query.FilterJobs(jobs, query.ParseKeywords(search)), nil
}

// LocationCounts groups by location. The filter's Location is ignored.
func (uc *JobUsecase) LocationCounts(ctx context.Context, f query.Filter, search string) ([]query.GroupCount, error) {
	f.Location = nil
	counts, err := uc.store.CountBy(ctx, query.GroupLocation, f.WithKeywords(query.ParseKeywords(search))...)
	if err != nil {
		return nil, uc.fail("count by location", err)
	}
	return counts, nil
}

// JobTypeCounts groups by job type. The filter's JobType is ignored.
func (uc *JobUsecase) JobTypeCounts(ctx context.Context, f query.Filter, search string) ([]query.GroupCount, error) {
	f.JobType = nil
	counts, err := uc.store.CountBy(ctx, query.GroupJobType, f.WithKeywords(query.ParseKeywords(search))...)
	if err != nil {
		return nil, uc.fail("count by job type", err)
	}
	return counts, nil
}

// SalaryBucketCounts groups by salary bucket, ascending. Salary bounds in the
// filter are ignored.
func (uc *JobUsecase) SalaryBucketCounts(ctx context.Context, f query.Filter, search string) ([]query.BucketCount, error) {
	f.MinSalary, f.MaxSalary = nil, nil
	counts, err := uc.store.CountBySalaryBucket(ctx, f.WithKeywords(query.ParseKeywords(search))...)
	if err != nil {
		return nil, uc.fail("count by salary bucket", err)
	}
	return counts, nil
}

// JobCoordinates joins filtered jobs to their company coordinates and then
// keyword-filters the rows in memory.
func (uc *JobUsecase) JobCoordinates(ctx context.Context, f query.Filter, search string) ([]model.JobLocation, error) {
	rows, err := uc.store.FindWithCoordinates(ctx, f.Predicates()...)
	if err != nil {
		return nil, uc.fail("job coordinates", err)
	}
	return query.FilterJobLocations(rows, query.ParseKeywords(search)), nil
}
