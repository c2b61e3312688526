package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// scoped starts a jobs query with every predicate pushed down as a WHERE clause.
func (r *JobRepository) scoped(ctx context.Context, preds []query.Predicate) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&model.Job{})
	for _, p := range preds {
		sql, args := p.Clause()
		tx = tx.Where(sql, args...)
	}
	return tx
}

func (r *JobRepository) All(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).First(&j, "job_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Job{}, model.ErrJobNotFound
	}
	return j, err
}

func (r *JobRepository) FindByCity(ctx context.Context, city string) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Where("city = ?", city).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByLocation(ctx context.Context, location string) ([]model.Job, error) {
	var jobs []model.Job
	err := r.scoped(ctx, []query.Predicate{query.LocationIs(location)}).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Find(ctx context.Context, sort query.SortKey, preds ...query.Predicate) ([]model.Job, error) {
	var jobs []model.Job
	tx := r.scoped(ctx, preds)
	if order := sort.OrderBy(); order != "" {
		tx = tx.Order(order)
	}
	err := tx.Find(&jobs).Error
	return jobs, err
}

type groupRow struct {
	GroupKey *string
	JobCount int64
}

func (r *JobRepository) CountBy(ctx context.Context, field query.GroupField, preds ...query.Predicate) ([]query.GroupCount, error) {
	var rows []groupRow
	col := field.Column()
	err := r.scoped(ctx, preds).
		Select(col + " AS group_key, COUNT(*) AS job_count").
		Group(col).
		Order(col).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]query.GroupCount, 0, len(rows))
	for _, row := range rows {
		gc := query.GroupCount{Count: row.JobCount}
		if row.GroupKey != nil {
			gc.Key = *row.GroupKey
		}
		out = append(out, gc)
	}
	return out, nil
}

type bucketRow struct {
	Bucket   int64
	JobCount int64
}

// CountBySalaryBucket groups on floor(salary / width) in the database. Rows
// with a NULL salary are excluded.
func (r *JobRepository) CountBySalaryBucket(ctx context.Context, preds ...query.Predicate) ([]query.BucketCount, error) {
	var rows []bucketRow
	bucket := fmt.Sprintf("CAST(FLOOR(jobs.salary / %d) AS BIGINT)", query.SalaryBucketWidth)
	err := r.scoped(ctx, preds).
		Where("jobs.salary IS NOT NULL").
		Select(bucket + " AS bucket, COUNT(*) AS job_count").
		Group(bucket).
		Order("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]query.BucketCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, query.BucketCount{Index: row.Bucket, Count: row.JobCount})
	}
	return out, nil
}

type coordinateRow struct {
	model.Job `gorm:"embedded"`
	Latitude  float64
	Longitude float64
}

// FindWithCoordinates inner-joins jobs to their company. Jobs without a
// company, or whose company has no coordinates, are left out.
func (r *JobRepository) FindWithCoordinates(ctx context.Context, preds ...query.Predicate) ([]model.JobLocation, error) {
	var rows []coordinateRow
	err := r.scoped(ctx, preds).
		Select("jobs.*, companies.latitude AS latitude, companies.longitude AS longitude").
		Joins("JOIN companies ON companies.company_uid = jobs.company_uid").
		Where("companies.latitude IS NOT NULL AND companies.longitude IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]model.JobLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.JobLocation{Job: row.Job, Latitude: row.Latitude, Longitude: row.Longitude})
	}
	return out, nil
}
