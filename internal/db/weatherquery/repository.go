package weatherquery

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("weather query not found")

type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	Get(ctx context.Context, id uint) (Record, error)
	List(ctx context.Context) ([]Record, error)
	All(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, id uint, changes Changes) (Record, error)
	Delete(ctx context.Context, id uint) error
}

type WeatherSQLRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRepository(db *gorm.DB) Repository {
	return &WeatherSQLRepository{db: db, now: time.Now}
}

// NewRepositoryWithClock is NewRepository with a fixed source for created_at.
func NewRepositoryWithClock(db *gorm.DB, now func() time.Time) Repository {
	return &WeatherSQLRepository{db: db, now: now}
}

func (r *WeatherSQLRepository) Create(ctx context.Context, record Record) (Record, error) {
	row := toRow(record)
	row.ID = 0
	row.CreatedAt = r.now().UTC().Format(TimestampLayout)

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return Record{}, err
	}

	return fromRow(row)
}

func (r *WeatherSQLRepository) Get(ctx context.Context, id uint) (Record, error) {
	row, err := findByID(r.db.WithContext(ctx), id)
	if err != nil {
		return Record{}, err
	}
	return fromRow(row)
}

func (r *WeatherSQLRepository) List(ctx context.Context) ([]Record, error) {
	return r.findAll(ctx, "id DESC")
}

func (r *WeatherSQLRepository) All(ctx context.Context) ([]Record, error) {
	return r.findAll(ctx, "id ASC")
}

func (r *WeatherSQLRepository) Update(ctx context.Context, id uint, changes Changes) (Record, error) {
	var updated WeatherQuery

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := findByID(tx, id)
		if err != nil {
			return err
		}

		err = tx.Model(&row).Updates(map[string]interface{}{
			"location":        changes.Location,
			"latitude":        changes.Latitude,
			"longitude":       changes.Longitude,
			"start_date":      changes.StartDate.Format(DateLayout),
			"end_date":        changes.EndDate.Format(DateLayout),
			"weather_summary": changes.WeatherSummary,
		}).Error
		if err != nil {
			return err
		}

		updated, err = findByID(tx, id)
		return err
	})
	if err != nil {
		return Record{}, err
	}

	return fromRow(updated)
}

func (r *WeatherSQLRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&WeatherQuery{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WeatherSQLRepository) findAll(ctx context.Context, order string) ([]Record, error) {
	var rows []WeatherQuery
	if err := r.db.WithContext(ctx).Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func findByID(db *gorm.DB, id uint) (WeatherQuery, error) {
	var row WeatherQuery
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return WeatherQuery{}, ErrNotFound
	}
	if err != nil {
		return WeatherQuery{}, err
	}
	return row, nil
}
