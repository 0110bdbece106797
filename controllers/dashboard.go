package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookingpro-backend/repository"
	"bookingpro-backend/services"
	"bookingpro-backend/utils"
)

// DashboardController renders the index page with the booking list and the
// derived statistics.
type DashboardController struct {
	Repo *repository.BookingRepo
}

func NewDashboardController(repo *repository.BookingRepo) *DashboardController {
	return &DashboardController{Repo: repo}
}

// GetDashboard handles GET /
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	bookings, err := dc.Repo.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	stats := services.BuildDashboard(time.Now(), bookings)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"bookings":     stats.Bookings,
		"todayCount":   stats.TodayCount,
		"todayRevenue": stats.TodayRevenue,
		"history":      stats.History,
		"chart":        stats.Chart,
	})
}
