package handler

import (
	"errors"

	"github.com/BigVig29/GeoJobSearch/internal/dto"
	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
	"github.com/BigVig29/GeoJobSearch/internal/usecase"
	"github.com/BigVig29/GeoJobSearch/internal/util"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")

	jobs.Get("/", h.GetAllJobs)
	jobs.Get("/filter-city", h.FilterByCity)
	jobs.Get("/filter-location", h.FilterByLocation)
	jobs.Get("/locations", h.LocationCounts)
	jobs.Get("/locations/search", h.LocationCounts)
	jobs.Get("/job-types", h.JobTypeCounts)
	jobs.Get("/job-types/search", h.JobTypeCounts)
	jobs.Get("/salary", h.SalaryCounts)
	jobs.Get("/salary/search", h.SalaryCounts)
	jobs.Get("/filter", h.FilterJobs)
	jobs.Get("/filter/search", h.FilterJobsSearch)
	jobs.Get("/search", h.SearchJobs)
	jobs.Get("/sort", h.SortJobs)
	jobs.Get("/coordinates", h.JobCoordinates)

	// id routes last so they do not shadow the static paths above
	jobs.Get("/:id", h.GetJob)
	jobs.Get("/:id/title", h.GetJobTitle)
	jobs.Get("/:id/description", h.GetJobDescription)
	jobs.Get("/:id/url", h.GetJobURL)
	jobs.Get("/:id/location", h.GetJobLocation)
	jobs.Get("/:id/salary", h.GetJobSalary)
}

// fail maps usecase and parameter errors onto the error envelope.
func (h *JobHandler) fail(c *fiber.Ctx, message string, err error) error {
	var paramErr *util.ParamError
	switch {
	case errors.As(err, &paramErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: paramErr.Error(),
		}, err)
	case errors.Is(err, model.ErrJobNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "job not found",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: message,
		}, err)
	}
}

func (h *JobHandler) ok(c *fiber.Ctx, message string, data any) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    data,
	})
}

// parseFilter reads location, jobType, minSalary and maxSalary.
func parseFilter(c *fiber.Ctx) (query.Filter, error) {
	minSalary, err := util.OptionalIntQuery(c, "minSalary")
	if err != nil {
		return query.Filter{}, err
	}
	maxSalary, err := util.OptionalIntQuery(c, "maxSalary")
	if err != nil {
		return query.Filter{}, err
	}
	return query.Filter{
		Location:  util.OptionalStringQuery(c, "location"),
		JobType:   util.OptionalStringQuery(c, "jobType"),
		MinSalary: minSalary,
		MaxSalary: maxSalary,
	}, nil
}

func (h *JobHandler) GetAllJobs(c *fiber.Ctx) error {
	jobs, err := h.uc.GetAllJobs(c.UserContext())
	if err != nil {
		return h.fail(c, "failed to get jobs", err)
	}
	return h.ok(c, "Success get jobs", jobs)
}

func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := util.IDParam(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	job, err := h.uc.GetJob(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "failed to get job", err)
	}
	return h.ok(c, "Success get job", job)
}

func (h *JobHandler) jobText(c *fiber.Ctx, field string, get func(uc *usecase.JobUsecase, c *fiber.Ctx, id int64) (string, error)) error {
	id, err := util.IDParam(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	v, err := get(h.uc, c, id)
	if err != nil {
		return h.fail(c, "failed to get job "+field, err)
	}
	return h.ok(c, "Success get job "+field, v)
}

func (h *JobHandler) GetJobTitle(c *fiber.Ctx) error {
	return h.jobText(c, "title", func(uc *usecase.JobUsecase, c *fiber.Ctx, id int64) (string, error) {
		return uc.GetJobTitle(c.UserContext(), id)
	})
}

func (h *JobHandler) GetJobDescription(c *fiber.Ctx) error {
	return h.jobText(c, "description", func(uc *usecase.JobUsecase, c *fiber.Ctx, id int64) (string, error) {
		return uc.GetJobDescription(c.UserContext(), id)
	})
}

func (h *JobHandler) GetJobURL(c *fiber.Ctx) error {
	return h.jobText(c, "url", func(uc *usecase.JobUsecase, c *fiber.Ctx, id int64) (string, error) {
		return uc.GetJobURL(c.UserContext(), id)
	})
}

func (h *JobHandler) GetJobLocation(c *fiber.Ctx) error {
	return h.jobText(c, "location", func(uc *usecase.JobUsecase, c *fiber.Ctx, id int64) (string, error) {
		return uc.GetJobLocation(c.UserContext(), id)
	})
}

// GetJobSalary returns data: null when the job has no salary recorded.
func (h *JobHandler) GetJobSalary(c *fiber.Ctx) error {
	id, err := util.IDParam(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	salary, err := h.uc.GetJobSalary(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "failed to get job salary", err)
	}
	return h.ok(c, "Success get job salary", salary)
}

func (h *JobHandler) FilterByCity(c *fiber.Ctx) error {
	jobs, err := h.uc.FilterByCity(c.UserContext(), c.Query("city"))
	if err != nil {
		return h.fail(c, "failed to filter jobs by city", err)
	}
	return h.ok(c, "Success filter jobs by city", jobs)
}

func (h *JobHandler) FilterByLocation(c *fiber.Ctx) error {
	jobs, err := h.uc.FilterByLocation(c.UserContext(), c.Query("location"))
	if err != nil {
		return h.fail(c, "failed to filter jobs by location", err)
	}
	return h.ok(c, "Success filter jobs by location", jobs)
}

func (h *JobHandler) LocationCounts(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	counts, err := h.uc.LocationCounts(c.UserContext(), f, c.Query("search"))
	if err != nil {
		return h.fail(c, "failed to count jobs by location", err)
	}
	return h.ok(c, "Success count jobs by location", dto.NewLocationCounts(counts))
}

func (h *JobHandler) JobTypeCounts(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	counts, err := h.uc.JobTypeCounts(c.UserContext(), f, c.Query("search"))
	if err != nil {
		return h.fail(c, "failed to count jobs by job type", err)
	}
	return h.ok(c, "Success count jobs by job type", dto.NewJobTypeCounts(counts))
}

func (h *JobHandler) SalaryCounts(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	counts, err := h.uc.SalaryBucketCounts(c.UserContext(), f, c.Query("search"))
	if err != nil {
		return h.fail(c, "failed to count jobs by salary range", err)
	}
	return h.ok(c, "Success count jobs by salary range", dto.NewSalaryRangeCounts(counts))
}

func (h *JobHandler) FilterJobs(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	jobs, err := h.uc.FilterJobs(c.UserContext(), f)
	if err != nil {
		return h.fail(c, "failed to filter jobs", err)
	}
	return h.ok(c, "Success filter jobs", jobs)
}

func (h *JobHandler) FilterJobsSearch(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	jobs, err := h.uc.FilterJobsSearch(c.UserContext(), f, c.Query("search"))
	if err != nil {
		return h.fail(c, "failed to filter jobs", err)
	}
	return h.ok(c, "Success filter jobs", jobs)
}

func (h *JobHandler) SearchJobs(c *fiber.Ctx) error {
	jobs, err := h.uc.SearchJobs(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return h.fail(c, "failed to search jobs", err)
	}
	return h.ok(c, "Success search jobs", jobs)
}

func (h *JobHandler) SortJobs(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	jobs, err := h.uc.SortJobs(c.UserContext(), f, c.Query("search"), c.Query("sortBy"))
	if err != nil {
		return h.fail(c, "failed to sort jobs", err)
	}
	return h.ok(c, "Success sort jobs", jobs)
}

func (h *JobHandler) JobCoordinates(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return h.fail(c, "", err)
	}
	rows, err := h.uc.JobCoordinates(c.UserContext(), f, c.Query("search"))
	if err != nil {
		return h.fail(c, "failed to get job coordinates", err)
	}
	return h.ok(c, "Success get job coordinates", dto.NewJobCoordinates(rows))
}
