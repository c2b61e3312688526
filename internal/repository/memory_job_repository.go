package repository

import (
	"context"

	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
)

// MemoryJobRepository serves jobs from a fixed in-memory snapshot, evaluating
// every predicate with Match. It answers the same contract as JobRepository.
type MemoryJobRepository struct {
	jobs      []model.Job
	companies map[string]model.Company
}

func NewMemoryJobRepository(jobs []model.Job, companies []model.Company) *MemoryJobRepository {
	byUID := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		byUID[c.UID] = c
	}
	return &MemoryJobRepository{
		jobs:      append([]model.Job(nil), jobs...),
		companies: byUID,
	}
}

func (r *MemoryJobRepository) All(ctx context.Context) ([]model.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Job(nil), r.jobs...), nil
}

func (r *MemoryJobRepository) FindByID(ctx context.Context, id int64) (model.Job, error) {
	if err := ctx.Err(); err != nil {
		return model.Job{}, err
	}
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return model.Job{}, model.ErrJobNotFound
}

func (r *MemoryJobRepository) FindByCity(ctx context.Context, city string) ([]model.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Job, 0)
	for _, j := range r.jobs {
		if j.City == city {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *MemoryJobRepository) FindByLocation(ctx context.Context, location string) ([]model.Job, error) {
	return r.Find(ctx, query.SortNone, query.LocationIs(location))
}

func (r *MemoryJobRepository) Find(ctx context.Context, sort query.SortKey, preds ...query.Predicate) ([]model.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := query.Select(r.jobs, preds...)
	query.SortJobs(out, sort)
	return out, nil
}

func (r *MemoryJobRepository) CountBy(ctx context.Context, field query.GroupField, preds ...query.Predicate) ([]query.GroupCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.CountBy(query.Select(r.jobs, preds...), field), nil
}

func (r *MemoryJobRepository) CountBySalaryBucket(ctx context.Context, preds ...query.Predicate) ([]query.BucketCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.CountBySalaryBucket(query.Select(r.jobs, preds...)), nil
}

func (r *MemoryJobRepository) FindWithCoordinates(ctx context.Context, preds ...query.Predicate) ([]model.JobLocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.JobLocation, 0)
	for _, j := range query.Select(r.jobs, preds...) {
		if j.CompanyUID == nil {
			continue
		}
		c, ok := r.companies[*j.CompanyUID]
		if !ok || !c.HasCoordinates() {
			continue
		}
		out = append(out, model.JobLocation{Job: j, Latitude: *c.Latitude, Longitude: *c.Longitude})
	}
	return out, nil
}
