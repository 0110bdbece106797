package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookingpro-backend/models"
)

var ErrNotFound = errors.New("booking not found")

// BookingRepo wraps every database operation on bookings. Each method is a
// single auto-committed statement; handlers own the error-to-status mapping.
type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Migrate ensures the bookings schema exists. Idempotent, called once at
// bootstrap.
func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&models.Booking{})
}

func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// ListAll returns every booking ordered ascending by appointment time.
func (r *BookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).Order("appointment_time ASC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepo) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateTime changes appointment_time and nothing else.
func (r *BookingRepo) UpdateTime(ctx context.Context, id uint, t models.NaiveTime) error {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("appointment_time", t)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
