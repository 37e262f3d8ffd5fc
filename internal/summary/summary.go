// Package summary renders forecast payloads into the short text stored with
// each weather query.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"ulascansenturk/weather-query-service/internal/providers"
)

const (
	// Fallback is returned when a payload has neither current conditions nor
	// daily entries.
	Fallback = "No summary available."

	maxDays   = 5
	nullValue = "null"
)

// Render produces one "Current:" line when current conditions are present,
// followed by one line for each of the first five daily entries.
func Render(payload *providers.ForecastPayload) string {
	if payload == nil {
		return Fallback
	}

	var lines []string

	if current := payload.CurrentWeather; current != nil && (current.Temperature != nil || current.WindSpeed != nil) {
		lines = append(lines, fmt.Sprintf("Current: %s°C, wind %s km/h",
			formatValue(current.Temperature), formatValue(current.WindSpeed)))
	}

	daily := payload.Daily
	for i, day := range daily.Time {
		if i == maxDays {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: min %s°C / max %s°C, precip%% %s, wind %s km/h",
			day,
			formatValue(at(daily.TemperatureMin, i)),
			formatValue(at(daily.TemperatureMax, i)),
			formatValue(at(daily.PrecipitationProbabilityMax, i)),
			formatValue(at(daily.WindSpeedMax, i)),
		))
	}

	if len(lines) == 0 {
		return Fallback
	}

	return strings.Join(lines, "\n")
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func formatValue(v *float64) string {
	if v == nil {
		return nullValue
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
