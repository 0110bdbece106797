package routes

import (
	"bookingpro-backend/config"
	"bookingpro-backend/controllers"
	"bookingpro-backend/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(repo *repository.BookingRepo) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	r.LoadHTMLGlob("templates/*")

	bookingController := controllers.NewBookingController(repo)
	formController := controllers.NewFormController(repo)
	dashboardController := controllers.NewDashboardController(repo)

	// JSON API
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingController.CreateBooking)
		bookings.GET("", bookingController.GetBookings)
		bookings.DELETE("/:id", bookingController.DeleteBooking)
		bookings.PUT("/:id/reschedule", bookingController.RescheduleBooking)
	}

	// HTML forms
	r.GET("/", dashboardController.GetDashboard)
	r.POST("/add", formController.AddBookingForm)
	r.GET("/delete/:id", formController.DeleteBookingForm)
	r.POST("/delete/:id", formController.DeleteBookingForm)
	r.POST("/reschedule/:id", formController.RescheduleBookingForm)

	return r
}
