package weatherquery

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.000000"
)

// WeatherQuery is the persisted row. Every column is text so coordinates and
// dates round-trip byte for byte on both SQLite and Postgres.
type WeatherQuery struct {
	ID             uint   `gorm:"primaryKey"`
	Location       string `gorm:"column:location;not null;index:idx_location"`
	Latitude       string `gorm:"column:latitude;not null"`
	Longitude      string `gorm:"column:longitude;not null"`
	StartDate      string `gorm:"column:start_date;type:varchar(10);not null"`
	EndDate        string `gorm:"column:end_date;type:varchar(10);not null"`
	WeatherSummary string `gorm:"column:weather_summary;type:text;not null"`
	CreatedAt      string `gorm:"column:created_at;autoCreateTime:false"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}

// Record is the repository's view of a stored query.
type Record struct {
	ID             uint
	Location       string
	Latitude       string
	Longitude      string
	StartDate      time.Time
	EndDate        time.Time
	WeatherSummary string
	CreatedAt      string
}

// Changes holds the columns an update overwrites.
type Changes struct {
	Location       string
	Latitude       string
	Longitude      string
	StartDate      time.Time
	EndDate        time.Time
	WeatherSummary string
}

func toRow(r Record) WeatherQuery {
	return WeatherQuery{
		ID:             r.ID,
		Location:       r.Location,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		StartDate:      r.StartDate.Format(DateLayout),
		EndDate:        r.EndDate.Format(DateLayout),
		WeatherSummary: r.WeatherSummary,
		CreatedAt:      r.CreatedAt,
	}
}

func fromRow(row WeatherQuery) (Record, error) {
	start, err := time.Parse(DateLayout, row.StartDate)
	if err != nil {
		return Record{}, fmt.Errorf("weather query %d has invalid start_date %q: %w", row.ID, row.StartDate, err)
	}
	end, err := time.Parse(DateLayout, row.EndDate)
	if err != nil {
		return Record{}, fmt.Errorf("weather query %d has invalid end_date %q: %w", row.ID, row.EndDate, err)
	}

	return Record{
		ID:             row.ID,
		Location:       row.Location,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		StartDate:      start,
		EndDate:        end,
		WeatherSummary: row.WeatherSummary,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func fromRows(rows []WeatherQuery) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
