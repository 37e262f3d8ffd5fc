package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
	"ulascansenturk/weather-query-service/internal/export"
	"ulascansenturk/weather-query-service/internal/providers"
	"ulascansenturk/weather-query-service/internal/summary"
)

const (
	msgInvalidDates           = "end_date must be on or after start_date"
	msgLocationNotFound       = "Location not found (try a different spelling)"
	msgUpdateLocationNotFound = "Location not found for update"
	msgRecordNotFound         = "Not found"
)

type CreateInput struct {
	Location  string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateInput is a sparse patch; nil fields keep the stored value.
type UpdateInput struct {
	Location  *string
	StartDate *time.Time
	EndDate   *time.Time
}

type QueryService interface {
	Create(ctx context.Context, input CreateInput) (weatherquery.Record, error)
	List(ctx context.Context) ([]weatherquery.Record, error)
	Get(ctx context.Context, id uint) (weatherquery.Record, error)
	Update(ctx context.Context, id uint, input UpdateInput) (weatherquery.Record, error)
	Delete(ctx context.Context, id uint) error
	Export(ctx context.Context, format string) (export.Document, error)
}

type queryService struct {
	weatherAPI providers.OpenMeteoClient
	repo       weatherquery.Repository
}

func NewQueryService(weatherAPI providers.OpenMeteoClient, repo weatherquery.Repository) QueryService {
	return &queryService{
		weatherAPI: weatherAPI,
		repo:       repo,
	}
}

func (s *queryService) Create(ctx context.Context, input CreateInput) (weatherquery.Record, error) {
	if input.EndDate.Before(input.StartDate) {
		return weatherquery.Record{}, &ValidationError{Message: msgInvalidDates}
	}

	loc, err := s.resolve(ctx, input.Location, msgLocationNotFound)
	if err != nil {
		return weatherquery.Record{}, err
	}

	weatherSummary, err := s.summarize(ctx, loc.Latitude, loc.Longitude, input.StartDate, input.EndDate)
	if err != nil {
		return weatherquery.Record{}, err
	}

	record, err := s.repo.Create(ctx, weatherquery.Record{
		Location:       loc.DisplayName(),
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		WeatherSummary: weatherSummary,
	})
	if err != nil {
		return weatherquery.Record{}, fmt.Errorf("failed to store weather query: %w", err)
	}

	log.Info().Uint("id", record.ID).Str("location", record.Location).Msg("weather query created")

	return record, nil
}

func (s *queryService) List(ctx context.Context) ([]weatherquery.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather queries: %w", err)
	}
	return records, nil
}

func (s *queryService) Get(ctx context.Context, id uint) (weatherquery.Record, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return weatherquery.Record{}, recordError(err)
	}
	return record, nil
}

func (s *queryService) Update(ctx context.Context, id uint, input UpdateInput) (weatherquery.Record, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return weatherquery.Record{}, recordError(err)
	}

	start, end := existing.StartDate, existing.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if end.Before(start) {
		return weatherquery.Record{}, &ValidationError{Message: msgInvalidDates}
	}

	changes := weatherquery.Changes{
		Location:  existing.Location,
		Latitude:  existing.Latitude,
		Longitude: existing.Longitude,
		StartDate: start,
		EndDate:   end,
	}

	if input.Location != nil && strings.TrimSpace(*input.Location) != "" {
		loc, err := s.resolve(ctx, *input.Location, msgUpdateLocationNotFound)
		if err != nil {
			return weatherquery.Record{}, err
		}
		changes.Location = loc.DisplayName()
		changes.Latitude = loc.Latitude
		changes.Longitude = loc.Longitude
	}

	changes.WeatherSummary, err = s.summarize(ctx, changes.Latitude, changes.Longitude, start, end)
	if err != nil {
		return weatherquery.Record{}, err
	}

	record, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return weatherquery.Record{}, recordError(err)
	}

	log.Info().Uint("id", record.ID).Str("location", record.Location).Msg("weather query updated")

	return record, nil
}

func (s *queryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return recordError(err)
	}

	log.Info().Uint("id", id).Msg("weather query deleted")

	return nil
}

func (s *queryService) Export(ctx context.Context, format string) (export.Document, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return export.Document{}, fmt.Errorf("failed to read weather queries for export: %w", err)
	}

	rows := make([]export.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, export.Row{
			ID:             record.ID,
			Location:       record.Location,
			Latitude:       record.Latitude,
			Longitude:      record.Longitude,
			StartDate:      record.StartDate.Format(weatherquery.DateLayout),
			EndDate:        record.EndDate.Format(weatherquery.DateLayout),
			WeatherSummary: record.WeatherSummary,
			CreatedAt:      record.CreatedAt,
		})
	}

	return export.Render(format, rows)
}

func (s *queryService) resolve(ctx context.Context, query, notFoundMessage string) (*providers.Location, error) {
	loc, err := s.weatherAPI.ResolveLocation(ctx, query)
	if errors.Is(err, providers.ErrLocationNotFound) {
		return nil, &NotFoundError{Message: notFoundMessage}
	}
	if err != nil {
		return nil, &UpstreamError{Op: "geocoding", Err: err}
	}
	return loc, nil
}

func (s *queryService) summarize(ctx context.Context, latitude, longitude string, start, end time.Time) (string, error) {
	payload, err := s.weatherAPI.FetchForecast(ctx, latitude, longitude, start, end)
	if err != nil {
		return "", &UpstreamError{Op: "forecast", Err: err}
	}
	return summary.Render(payload), nil
}

func recordError(err error) error {
	if errors.Is(err, weatherquery.ErrNotFound) {
		return &NotFoundError{Message: msgRecordNotFound}
	}
	return err
}
