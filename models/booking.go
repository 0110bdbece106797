package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TimeLayout is the wire format for date-times. All times are naive: no
// timezone is stored or transmitted.
const TimeLayout = "2006-01-02T15:04:05"

type Booking struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ClientName  string `json:"client_name" gorm:"not null"`
	ServiceType string `json:"service_type" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Price       int    `json:"price" gorm:"default:0"`

	AppointmentTime NaiveTime `json:"appointment_time" gorm:"type:timestamp;not null;index"`
	CreatedAt       NaiveTime `json:"created_at" gorm:"type:timestamp"`
}

// Stamp created_at once; it never changes afterwards.
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = NewNaiveTime(time.Now())
	}
	return
}

// NaiveTime is a date-time without timezone information. It marshals as
// "2006-01-02T15:04:05"; on input an RFC3339 value is also accepted and its
// offset is dropped.
type NaiveTime struct {
	time.Time
}

// NewNaiveTime strips the location from t, keeping its civil components.
func NewNaiveTime(t time.Time) NaiveTime {
	return NaiveTime{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

func (t NaiveTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

func (t *NaiveTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if parsed, err := time.Parse(TimeLayout, s); err == nil {
		*t = NaiveTime{parsed}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date-time %q", s)
	}
	*t = NewNaiveTime(parsed)
	return nil
}

func (t NaiveTime) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *NaiveTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*t = NewNaiveTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		*t = NaiveTime{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into NaiveTime", value)
}

func (t *NaiveTime) scanString(s string) error {
	for _, layout := range []string{time.RFC3339Nano, TimeLayout, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewNaiveTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as NaiveTime", s)
}
