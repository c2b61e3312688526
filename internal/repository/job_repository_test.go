package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/BigVig29/GeoJobSearch/internal/model"
	"github.com/BigVig29/GeoJobSearch/internal/query"
	"github.com/BigVig29/GeoJobSearch/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func day(d int) *time.Time {
	t := time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
	return &t
}

func fixture() ([]model.Job, []model.Company) {
	jobs := []model.Job{
		{ID: 1, Title: "Go Developer", Company: "Shopify", Location: "Toronto, ON", City: "Toronto", Province: "ON",
			JobType: "Full-time", Description: "Build APIs", Salary: floatPtr(124999), Date: day(3), CompanyUID: strPtr("c1")},
		{ID: 2, Title: "Java Developer", Company: "RBC", Location: "Toronto, ON", City: "Toronto", Province: "ON",
			JobType: "Contract", Description: "Spring foo services", Salary: floatPtr(150000), Date: day(10), CompanyUID: strPtr("c2")},
		{ID: 3, Title: "Data Analyst", Company: "Foodora", Location: "Ottawa, ON", City: "Ottawa", Province: "ON",
			JobType: "Full-time", Description: "SQL dashboards, 50% remote", Salary: floatPtr(70000), Date: day(1), CompanyUID: strPtr("c3")},
		{ID: 4, Title: "Barista", Company: "Cafe", Location: "Ottawa, ON", City: "Ottawa", Province: "ON",
			JobType: "Part-time", Description: "Coffee for 500 people", Salary: nil, Date: nil},
		{ID: 5, Title: "FOO Engineer", Company: "Acme", Location: "Toronto, ON", City: "Toronto", Province: "ON",
			JobType: "Full-time", Description: "Widgets", Salary: floatPtr(0), Date: day(5), CompanyUID: strPtr("missing")},
		{ID: 6, Title: "Intern", Company: "Shopify", Location: "Ottawa, ON", City: "Ottawa", Province: "ON",
			JobType: "Part-time", Description: "Learn Go", Salary: floatPtr(49999.5), Date: day(5), CompanyUID: strPtr("c1")},
	}
	companies := []model.Company{
		{UID: "c1", Name: "Shopify", City: "Toronto", Province: "ON", Latitude: floatPtr(43.6426), Longitude: floatPtr(-79.3871)},
		{UID: "c2", Name: "RBC", City: "Toronto", Province: "ON", Latitude: floatPtr(43.6487), Longitude: floatPtr(-79.3817)},
		{UID: "c3", Name: "Foodora", City: "Ottawa", Province: "ON", Latitude: nil, Longitude: floatPtr(-75.69)},
	}
	return jobs, companies
}

// setupDB starts PostgreSQL in a container and loads the fixture.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("geojobsearch_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Company{}, &model.Job{}))
	jobs, companies := fixture()
	require.NoError(t, db.Create(&companies).Error)
	require.NoError(t, db.Create(&jobs).Error)
	return db
}

func ids(jobs []model.Job) []int64 {
	out := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestJobRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewJobRepository(db)

	t.Run("FindByID", func(t *testing.T) {
		j, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Go Developer", j.Title)
		require.NotNil(t, j.Salary)
		assert.Equal(t, 124999.0, *j.Salary)
		require.NotNil(t, j.CompanyUID)
		assert.Equal(t, "c1", *j.CompanyUID)

		_, err = repo.FindByID(ctx, 404)
		assert.ErrorIs(t, err, model.ErrJobNotFound)
	})

	t.Run("FindByCityAndLocation", func(t *testing.T) {
		jobs, err := repo.FindByCity(ctx, "Ottawa")
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{3, 4, 6}, ids(jobs))

		jobs, err = repo.FindByLocation(ctx, "Toronto, ON")
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2, 5}, ids(jobs))
	})

	t.Run("SalaryBuckets", func(t *testing.T) {
		buckets, err := repo.CountBySalaryBucket(ctx)
		require.NoError(t, err)
		assert.Equal(t, []query.BucketCount{
			{Index: 0, Count: 2},
			{Index: 1, Count: 1},
			{Index: 2, Count: 1},
			{Index: 3, Count: 1},
		}, buckets)
		assert.Equal(t, query.SalaryRange{Min: 100000, Max: 149999}, buckets[2].Range())
		assert.Equal(t, query.SalaryRange{Min: 150000, Max: 199999}, buckets[3].Range())
	})

	t.Run("Coordinates", func(t *testing.T) {
		rows, err := repo.FindWithCoordinates(ctx)
		require.NoError(t, err)
		got := make([]int64, 0, len(rows))
		for _, r := range rows {
			got = append(got, r.Job.ID)
			if r.Job.ID == 2 {
				assert.InDelta(t, 43.6487, r.Latitude, 1e-6)
				assert.InDelta(t, -79.3817, r.Longitude, 1e-6)
				assert.Equal(t, "Java Developer", r.Job.Title)
			}
		}
		assert.ElementsMatch(t, []int64{1, 2, 6}, got)
	})

	t.Run("KeywordEscaping", func(t *testing.T) {
		jobs, err := repo.Find(ctx, query.SortNone, query.ParseKeywords("50%"))
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, ids(jobs))

		jobs, err = repo.Find(ctx, query.SortNone, query.ParseKeywords("SHOPIFY"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 6}, ids(jobs))
	})
}

// The database and the in-memory store must agree on every query shape.
func TestJobRepository_MatchesMemoryStore(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	sqlStore := repository.NewJobRepository(db)
	memStore := repository.NewMemoryJobRepository(fixture())

	filters := []query.Filter{
		{},
		{Location: strPtr("Toronto, ON")},
		{JobType: strPtr("Full-time")},
		{MinSalary: floatPtr(50000)},
		{MaxSalary: floatPtr(124999)},
		{Location: strPtr("Ottawa, ON"), MinSalary: floatPtr(0), MaxSalary: floatPtr(100000)},
		{Location: strPtr("Nowhere")},
	}
	searches := []string{"", "foo", "go developer", "SQL coffee widgets", "rust elixir haskell foo", "50%", "_"}

	for _, f := range filters {
		for _, s := range searches {
			preds := f.WithKeywords(query.ParseKeywords(s))

			want, err := memStore.Find(ctx, query.SortNone, preds...)
			require.NoError(t, err)
			got, err := sqlStore.Find(ctx, query.SortNone, preds...)
			require.NoError(t, err)
			assert.ElementsMatch(t, ids(want), ids(got), "find %+v %q", f, s)

			for _, key := range []query.SortKey{query.SortSalary, query.SortDate} {
				want, err := memStore.Find(ctx, key, preds...)
				require.NoError(t, err)
				got, err := sqlStore.Find(ctx, key, preds...)
				require.NoError(t, err)
				assert.Equal(t, ids(want), ids(got), "sort %s %+v %q", key, f, s)
			}

			for _, field := range []query.GroupField{query.GroupLocation, query.GroupJobType} {
				want, err := memStore.CountBy(ctx, field, preds...)
				require.NoError(t, err)
				got, err := sqlStore.CountBy(ctx, field, preds...)
				require.NoError(t, err)
				assert.Equal(t, want, got, "count by %d %+v %q", field, f, s)
			}

			wantBuckets, err := memStore.CountBySalaryBucket(ctx, preds...)
			require.NoError(t, err)
			gotBuckets, err := sqlStore.CountBySalaryBucket(ctx, preds...)
			require.NoError(t, err)
			assert.Equal(t, wantBuckets, gotBuckets, "buckets %+v %q", f, s)
		}
	}
}
