package handlers

import (
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
)

type CreateQueryRequest struct {
	Location  string `json:"location" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// UpdateQueryRequest is a sparse patch; absent fields keep their stored values.
type UpdateQueryRequest struct {
	Location  *string `json:"location"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type QueryResponse struct {
	ID             uint   `json:"id"`
	Location       string `json:"location"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	WeatherSummary string `json:"weather_summary"`
	CreatedAt      string `json:"created_at"`
}

type DeleteResponse struct {
	Deleted uint `json:"deleted"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

func newQueryResponse(r weatherquery.Record) QueryResponse {
	return QueryResponse{
		ID:             r.ID,
		Location:       r.Location,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		StartDate:      r.StartDate.Format(weatherquery.DateLayout),
		EndDate:        r.EndDate.Format(weatherquery.DateLayout),
		WeatherSummary: r.WeatherSummary,
		CreatedAt:      r.CreatedAt,
	}
}
