package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookingpro-backend/models"
	"bookingpro-backend/repository"
)

func setupTest(t *testing.T) (*gin.Engine, *repository.BookingRepo) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := repository.NewBookingRepo(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	bookingController := NewBookingController(repo)
	formController := NewFormController(repo)

	r := gin.New()
	r.POST("/bookings", bookingController.CreateBooking)
	r.GET("/bookings", bookingController.GetBookings)
	r.DELETE("/bookings/:id", bookingController.DeleteBooking)
	r.PUT("/bookings/:id/reschedule", bookingController.RescheduleBooking)
	r.POST("/add", formController.AddBookingForm)
	r.GET("/delete/:id", formController.DeleteBookingForm)
	r.POST("/delete/:id", formController.DeleteBookingForm)
	r.POST("/reschedule/:id", formController.RescheduleBookingForm)

	return r, repo
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedBooking(t *testing.T, repo *repository.BookingRepo, name string, day int) models.Booking {
	b := models.Booking{
		ClientName:      name,
		ServiceType:     "Haircut",
		Price:           100,
		AppointmentTime: models.NaiveTime{Time: time.Date(2030, 7, day, 10, 0, 0, 0, time.UTC)},
	}
	if err := repo.Create(context.Background(), &b); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func TestCreateBooking(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(r, "POST", "/bookings", gin.H{
		"client_name":      "Test Client",
		"service_type":     "Manicure",
		"price":            250,
		"appointment_time": "2030-12-31T12:00:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Test Client", got.ClientName)
	assert.Equal(t, 250, got.Price)
	assert.Contains(t, w.Body.String(), `"appointment_time":"2030-12-31T12:00:00"`)
}

func TestCreateBookingValidationDetails(t *testing.T) {
	r, repo := setupTest(t)

	w := doJSON(r, "POST", "/bookings", gin.H{
		"client_name": "A",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name"`)
	assert.Contains(t, w.Body.String(), `"service_type"`)

	bookings, _ := repo.ListAll(context.Background())
	assert.Empty(t, bookings)
}

func TestCreateBookingMissingAppointmentTime(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(r, "POST", "/bookings", gin.H{
		"client_name":  "Test Client",
		"service_type": "Haircut",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"appointment_time"`)
}

func TestGetBookingsOrdered(t *testing.T) {
	r, repo := setupTest(t)
	seedBooking(t, repo, "Late", 20)
	seedBooking(t, repo, "Early", 5)
	seedBooking(t, repo, "Middle", 12)

	w := doJSON(r, "GET", "/bookings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 3)
	assert.Equal(t, "Early", got[0].ClientName)
	assert.Equal(t, "Middle", got[1].ClientName)
	assert.Equal(t, "Late", got[2].ClientName)
}

func TestDeleteBookingTwice(t *testing.T) {
	r, repo := setupTest(t)
	b := seedBooking(t, repo, "Delete Me", 10)

	w := doJSON(r, "DELETE", fmt.Sprintf("/bookings/%d", b.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w = doJSON(r, "DELETE", fmt.Sprintf("/bookings/%d", b.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRescheduleUnknownBooking(t *testing.T) {
	r, repo := setupTest(t)

	w := doJSON(r, "PUT", "/bookings/999/reschedule", gin.H{
		"appointment_time": "2030-12-31T12:00:00",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	bookings, _ := repo.ListAll(context.Background())
	assert.Empty(t, bookings)
}

func TestRescheduleChangesOnlyAppointmentTime(t *testing.T) {
	r, repo := setupTest(t)
	b := seedBooking(t, repo, "Boris", 10)

	w := doJSON(r, "PUT", fmt.Sprintf("/bookings/%d/reschedule", b.ID), gin.H{
		"appointment_time": "2030-08-01T16:30:00",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"updated"`)

	stored, err := repo.Get(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2030-08-01T16:30:00", stored.AppointmentTime.Format(models.TimeLayout))
	assert.Equal(t, "Boris", stored.ClientName)
	assert.Equal(t, 100, stored.Price)
	assert.True(t, stored.CreatedAt.Equal(b.CreatedAt.Time))
}

func TestRescheduleRejectsMissingTime(t *testing.T) {
	r, repo := setupTest(t)
	b := seedBooking(t, repo, "Boris", 10)

	w := doJSON(r, "PUT", fmt.Sprintf("/bookings/%d/reschedule", b.ID), gin.H{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	stored, _ := repo.Get(context.Background(), b.ID)
	assert.True(t, stored.AppointmentTime.Equal(b.AppointmentTime.Time))
}
