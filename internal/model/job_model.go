package model

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a read-only posting row. Company is the denormalized company name;
// CompanyUID references the owning Company and may be nil.
type Job struct {
	ID          int64      `gorm:"column:job_id;primaryKey;autoIncrement" json:"jobID"`
	Title       string     `gorm:"column:title" json:"title"`
	Company     string     `gorm:"column:company" json:"company"`
	Location    string     `gorm:"column:location;index" json:"location"`
	City        string     `gorm:"column:city" json:"city"`
	Province    string     `gorm:"column:province" json:"province"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Salary      *float64   `gorm:"column:salary;type:numeric(12,2)" json:"salary"`
	JobType     string     `gorm:"column:job_type" json:"jobType"`
	Date        *time.Time `gorm:"column:date" json:"date"`
	JobURL      string     `gorm:"column:job_url" json:"jobURL"`
	CompanyUID  *string    `gorm:"column:company_uid;size:255;index" json:"-"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// JobLocation pairs a job with its company's coordinates.
type JobLocation struct {
	Job       Job
	Latitude  float64
	Longitude float64
}
