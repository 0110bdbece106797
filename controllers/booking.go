package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookingpro-backend/models"
	"bookingpro-backend/repository"
	"bookingpro-backend/utils"
)

// BookingCreateInput defines the expected JSON structure for creating a booking
type BookingCreateInput struct {
	ClientName      string           `json:"client_name" binding:"required,min=2"`
	ServiceType     string           `json:"service_type" binding:"required"`
	Description     string           `json:"description"`
	Price           int              `json:"price" binding:"omitempty,gte=0"`
	AppointmentTime models.NaiveTime `json:"appointment_time"`
}

// BookingUpdateDateInput carries the new appointment time for a reschedule
type BookingUpdateDateInput struct {
	AppointmentTime models.NaiveTime `json:"appointment_time"`
}

// BookingController serves the JSON API for bookings
type BookingController struct {
	Repo *repository.BookingRepo
}

func NewBookingController(repo *repository.BookingRepo) *BookingController {
	return &BookingController{Repo: repo}
}

// CreateBooking creates a new booking from a JSON payload
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input BookingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if details := utils.ValidationDetails(err); details != nil {
			utils.RespondWithValidationError(c, details)
			return
		}
		if strings.Contains(err.Error(), "invalid date-time") {
			utils.RespondWithValidationError(c, []utils.FieldError{
				{Field: "appointment_time", Message: "must be a valid date-time"},
			})
			return
		}
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.AppointmentTime.IsZero() {
		utils.RespondWithValidationError(c, []utils.FieldError{
			{Field: "appointment_time", Message: "is required"},
		})
		return
	}

	booking := models.Booking{
		ClientName:      input.ClientName,
		ServiceType:     input.ServiceType,
		Description:     input.Description,
		Price:           input.Price,
		AppointmentTime: input.AppointmentTime,
	}

	if err := bc.Repo.Create(c.Request.Context(), &booking); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves all bookings ordered by appointment time
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Repo.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking by id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := parseBookingID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := bc.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// RescheduleBooking updates the appointment time of an existing booking
func (bc *BookingController) RescheduleBooking(c *gin.Context) {
	id, err := parseBookingID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input BookingUpdateDateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.AppointmentTime.IsZero() {
		utils.RespondWithValidationError(c, []utils.FieldError{
			{Field: "appointment_time", Message: "must be a valid date-time"},
		})
		return
	}

	if err := bc.Repo.UpdateTime(c.Request.Context(), id, input.AppointmentTime); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reschedule booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func parseBookingID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
