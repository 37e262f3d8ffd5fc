package integration_test

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ulascansenturk/weather-query-service/internal/api/v1/handlers"
	"ulascansenturk/weather-query-service/internal/db"
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
	"ulascansenturk/weather-query-service/internal/providers"
	"ulascansenturk/weather-query-service/internal/service"
)

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// fakeOpenMeteo serves canned geocoding and forecast responses and counts
// calls to each.
type fakeOpenMeteo struct {
	geocoding     *httptest.Server
	forecast      *httptest.Server
	geocodeCalls  atomic.Int32
	forecastCalls atomic.Int32
}

func newFakeOpenMeteo(t *testing.T) *fakeOpenMeteo {
	f := &fakeOpenMeteo{}

	f.geocoding = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.geocodeCalls.Add(1)
		switch r.URL.Query().Get("name") {
		case "Paris":
			w.Write([]byte(`{"results":[{"name":"Paris","country":"France","latitude":48.85,"longitude":2.35}]}`))
		case "Mostar":
			w.Write([]byte(`{"results":[{"name":"Mostar & Co","country":"Bosnia <BA>","latitude":43.34,"longitude":17.81}]}`))
		case "Broken":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.Write([]byte(`{}`))
		}
	}))

	f.forecast = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.forecastCalls.Add(1)

		start, _ := time.Parse("2006-01-02", r.URL.Query().Get("start_date"))
		end, _ := time.Parse("2006-01-02", r.URL.Query().Get("end_date"))

		var days []string
		var values []float64
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, d.Format("2006-01-02"))
			values = append(values, 10)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"daily": map[string]interface{}{
				"time":                          days,
				"temperature_2m_max":            values,
				"temperature_2m_min":            values,
				"precipitation_probability_max": values,
				"wind_speed_10m_max":            values,
			},
		})
	}))

	t.Cleanup(func() {
		f.geocoding.Close()
		f.forecast.Close()
	})

	return f
}

func newHandler(t *testing.T, gormDB *gorm.DB, fake *fakeOpenMeteo) http.Handler {
	client := providers.NewOpenMeteoClient(fake.geocoding.URL, fake.forecast.URL, 5*time.Second)
	repository := weatherquery.NewRepository(gormDB)
	queryService := service.NewQueryService(client, repository)
	return handlers.NewQueryHandler(queryService, zerolog.Nop())
}

func setupSQLite(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gormDB))

	t.Cleanup(func() { sqlDB.Close() })

	return gormDB
}

func call(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	h.ServeHTTP(recorder, req)
	return recorder
}

func decodeQuery(t *testing.T, recorder *httptest.ResponseRecorder) handlers.QueryResponse {
	var response handlers.QueryResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func runQueryLifecycle(t *testing.T, gormDB *gorm.DB) {
	fake := newFakeOpenMeteo(t)
	h := newHandler(t, gormDB, fake)

	t.Run("CreateStoresResolvedLocationAndSummary", func(t *testing.T) {
		recorder := call(t, h, http.MethodPost, "/queries", `{"location":"Paris","start_date":"2024-01-01","end_date":"2024-01-03"}`)
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

		created := decodeQuery(t, recorder)
		assert.Equal(t, "Paris, France", created.Location)
		assert.Equal(t, "48.85", created.Latitude)
		assert.Equal(t, "2.35", created.Longitude)
		assert.Len(t, strings.Split(created.WeatherSummary, "\n"), 3)
		assert.NotEmpty(t, created.CreatedAt)

		var row weatherquery.WeatherQuery
		require.NoError(t, gormDB.First(&row, created.ID).Error)
		assert.Equal(t, "Paris, France", row.Location)
		assert.Equal(t, "2024-01-03", row.EndDate)
	})

	t.Run("ReversedDatesNeverReachProviders", func(t *testing.T) {
		geocodeBefore, forecastBefore := fake.geocodeCalls.Load(), fake.forecastCalls.Load()

		recorder := call(t, h, http.MethodPost, "/queries", `{"location":"Paris","start_date":"2024-01-05","end_date":"2024-01-01"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, geocodeBefore, fake.geocodeCalls.Load())
		assert.Equal(t, forecastBefore, fake.forecastCalls.Load())
	})

	t.Run("UnknownLocationIsNotFound", func(t *testing.T) {
		recorder := call(t, h, http.MethodPost, "/queries", `{"location":"Atlantis","start_date":"2024-01-01","end_date":"2024-01-01"}`)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("UpstreamFailureWritesNothing", func(t *testing.T) {
		var before int64
		require.NoError(t, gormDB.Model(&weatherquery.WeatherQuery{}).Count(&before).Error)

		recorder := call(t, h, http.MethodPost, "/queries", `{"location":"Broken","start_date":"2024-01-01","end_date":"2024-01-01"}`)
		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		var after int64
		require.NoError(t, gormDB.Model(&weatherquery.WeatherQuery{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("UpdateDeleteAndListOrdering", func(t *testing.T) {
		first := decodeQuery(t, call(t, h, http.MethodPost, "/queries", `{"location":"Paris","start_date":"2024-02-01","end_date":"2024-02-01"}`))
		second := decodeQuery(t, call(t, h, http.MethodPost, "/queries", `{"location":"Mostar","start_date":"2024-02-01","end_date":"2024-02-02"}`))

		forecastBefore := fake.forecastCalls.Load()
		recorder := call(t, h, http.MethodPut, fmt.Sprintf("/queries/%d", first.ID), `{"end_date":"2024-02-04"}`)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		updated := decodeQuery(t, recorder)
		assert.Equal(t, forecastBefore+1, fake.forecastCalls.Load())
		assert.Equal(t, first.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "Paris, France", updated.Location)
		assert.Len(t, strings.Split(updated.WeatherSummary, "\n"), 4)

		recorder = call(t, h, http.MethodPut, fmt.Sprintf("/queries/%d", first.ID), `{"start_date":"2024-03-01"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		recorder = call(t, h, http.MethodDelete, fmt.Sprintf("/queries/%d", second.ID), "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"deleted":%d}`, second.ID), recorder.Body.String())

		recorder = call(t, h, http.MethodGet, fmt.Sprintf("/queries/%d", second.ID), "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		third := decodeQuery(t, call(t, h, http.MethodPost, "/queries", `{"location":"Mostar","start_date":"2024-02-01","end_date":"2024-02-02"}`))

		var listed []handlers.QueryResponse
		recorder = call(t, h, http.MethodGet, "/queries", "")
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listed))
		require.NotEmpty(t, listed)
		assert.Equal(t, third.ID, listed[0].ID)
		for i := 1; i < len(listed); i++ {
			assert.Greater(t, listed[i-1].ID, listed[i].ID)
		}
	})

	t.Run("ExportFormats", func(t *testing.T) {
		recorder := call(t, h, http.MethodGet, "/export?format=xml", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Mostar &amp; Co, Bosnia &lt;BA&gt;")

		var parsed struct {
			Records []struct {
				Location string `xml:"location"`
			} `xml:"record"`
		}
		require.NoError(t, xml.Unmarshal(recorder.Body.Bytes(), &parsed))
		assert.NotEmpty(t, parsed.Records)

		jsonBody := call(t, h, http.MethodGet, "/export?format=json", "").Body.String()
		yamlBody := call(t, h, http.MethodGet, "/export?format=yaml", "").Body.String()
		assert.JSONEq(t, jsonBody, yamlBody)

		recorder = call(t, h, http.MethodGet, "/export?format=MD", "")
		assert.True(t, strings.HasPrefix(recorder.Body.String(), "# Export\n\n| id |"))
	})
}

func TestQueryLifecycleSQLite(t *testing.T) {
	runQueryLifecycle(t, setupSQLite(t))
}

func TestExportMarkdownWithNoRows(t *testing.T) {
	h := newHandler(t, setupSQLite(t), newFakeOpenMeteo(t))

	recorder := call(t, h, http.MethodGet, "/export?format=markdown", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "# Export\n\n_No rows_\n", recorder.Body.String())
}

func TestQueryLifecyclePostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	postgresContainer, err := pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		log.Info().Msg("Terminating PostgreSQL container")
		if err := postgresContainer.Terminate(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
		}
	})

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(gormDB))

	runQueryLifecycle(t, gormDB)
}
