package dto

import (
	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
)

type LocationCountDTO struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type JobTypeCountDTO struct {
	JobType string `json:"jobType"`
	Count   int64  `json:"count"`
}

type SalaryRangeCountDTO struct {
	MinSalary int64 `json:"minSalary"`
	MaxSalary int64 `json:"maxSalary"`
	Count     int64 `json:"count"`
}

type JobCoordinateDTO struct {
	Job       model.Job `json:"job"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

func NewLocationCounts(counts []query.GroupCount) []LocationCountDTO {
	out := make([]LocationCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, LocationCountDTO{Location: c.Key, Count: c.Count})
	}
	return out
}

func NewJobTypeCounts(counts []query.GroupCount) []JobTypeCountDTO {
	out := make([]JobTypeCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, JobTypeCountDTO{JobType: c.Key, Count: c.Count})
	}
	return out
}

func NewSalaryRangeCounts(counts []query.BucketCount) []SalaryRangeCountDTO {
	out := make([]SalaryRangeCountDTO, 0, len(counts))
	for _, c := range counts {
		r := c.Range()
		out = append(out, SalaryRangeCountDTO{MinSalary: r.Min, MaxSalary: r.Max, Count: c.Count})
	}
	return out
}

func NewJobCoordinates(rows []model.JobLocation) []JobCoordinateDTO {
	out := make([]JobCoordinateDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobCoordinateDTO{Job: r.Job, Latitude: r.Latitude, Longitude: r.Longitude})
	}
	return out
}
