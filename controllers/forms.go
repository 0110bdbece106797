package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bookingpro-backend/models"
	"bookingpro-backend/repository"
)

// FormTimeLayout is the only date format accepted from the HTML forms:
// "2006-01-02 15:04", no seconds, no timezone.
const FormTimeLayout = "2006-01-02 15:04"

// FormController serves the HTML-form routes. Unlike the API, this layer
// never surfaces an error to the browser: an empty or malformed field aborts
// the mutation and the client is redirected back to the dashboard unchanged.
type FormController struct {
	Repo *repository.BookingRepo
}

func NewFormController(repo *repository.BookingRepo) *FormController {
	return &FormController{Repo: repo}
}

// AddBookingForm handles POST /add
func (fc *FormController) AddBookingForm(c *gin.Context) {
	clientName := c.PostForm("client_name")
	serviceType := c.PostForm("service_type")

	appointmentTime, err := time.Parse(FormTimeLayout, c.PostForm("appointment_time"))
	if err != nil || len(clientName) < 2 || serviceType == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// A price that fails to parse counts as 0, same as leaving it blank.
	price, _ := strconv.Atoi(c.PostForm("price"))
	if price < 0 {
		price = 0
	}

	booking := models.Booking{
		ClientName:      clientName,
		ServiceType:     serviceType,
		Description:     c.PostForm("description"),
		Price:           price,
		AppointmentTime: models.NaiveTime{Time: appointmentTime},
	}
	fc.Repo.Create(c.Request.Context(), &booking)

	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteBookingForm handles GET and POST /delete/:id. Deleting an id that no
// longer exists is a no-op here, not a 404.
func (fc *FormController) DeleteBookingForm(c *gin.Context) {
	if id, err := parseBookingID(c); err == nil {
		fc.Repo.Delete(c.Request.Context(), id)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// RescheduleBookingForm handles POST /reschedule/:id
func (fc *FormController) RescheduleBookingForm(c *gin.Context) {
	id, err := parseBookingID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	newTime, err := time.Parse(FormTimeLayout, c.PostForm("new_time"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	fc.Repo.UpdateTime(c.Request.Context(), id, models.NaiveTime{Time: newTime})

	c.Redirect(http.StatusSeeOther, "/")
}
