package services

import (
	"fmt"
	"time"

	"bookingpro-backend/models"
	"bookingpro-backend/utils"
)

// statsZone is the civil offset used to decide what "today" means, regardless
// of where the server runs. Appointment times are stored naive, so the offset
// is applied to the clock and then dropped before comparing.
var statsZone = time.FixedZone("UTC+3", 3*60*60)

const chartDays = 7

// NoPopularService is shown when there are no past bookings to rank.
const NoPopularService = "—"

type BookingView struct {
	models.Booking
	Duration int `json:"duration"`
}

type ChartPoint struct {
	Label   string `json:"label"`
	Revenue int    `json:"revenue"`
}

type HistorySummary struct {
	Revenue int    `json:"revenue"`
	Clients int    `json:"clients"`
	Popular string `json:"popular"`
}

type DashboardStats struct {
	TodayCount   int            `json:"today_count"`
	TodayRevenue int            `json:"today_revenue"`
	History      HistorySummary `json:"history"`
	Chart        []ChartPoint   `json:"chart_series"`
	Bookings     []BookingView  `json:"bookings"`
}

// BuildDashboard computes every dashboard figure from the full booking list.
// Pure: no clock reads, no database access.
func BuildDashboard(now time.Time, bookings []models.Booking) DashboardStats {
	civilNow := naive(now.In(statsZone))
	today := utils.BeginningOfDay(civilNow)
	windowStart := today.AddDate(0, 0, -(chartDays - 1))

	stats := DashboardStats{
		Bookings: make([]BookingView, 0, len(bookings)),
		Chart:    make([]ChartPoint, chartDays),
	}

	for i := 0; i < chartDays; i++ {
		day := windowStart.AddDate(0, 0, i)
		stats.Chart[i].Label = fmt.Sprintf("%d.%d", day.Day(), int(day.Month()))
	}

	var past []models.Booking
	for _, b := range bookings {
		stats.Bookings = append(stats.Bookings, BookingView{
			Booking:  b,
			Duration: models.DurationFor(b.ServiceType),
		})

		at := b.AppointmentTime.Time
		day := utils.BeginningOfDay(at)

		if day.Equal(today) {
			stats.TodayCount++
			stats.TodayRevenue += b.Price
		}
		if at.Before(civilNow) {
			past = append(past, b)
			stats.History.Revenue += b.Price
			stats.History.Clients++
		}
		if !day.Before(windowStart) && !day.After(today) {
			stats.Chart[utils.DaysBetween(windowStart, day)].Revenue += b.Price
		}
	}

	stats.History.Popular = popularService(past)
	return stats
}

// popularService returns the most frequent service type among the given
// bookings. Ties go to the service seen first.
func popularService(bookings []models.Booking) string {
	counts := make(map[string]int, len(bookings))
	var order []string
	for _, b := range bookings {
		if _, seen := counts[b.ServiceType]; !seen {
			order = append(order, b.ServiceType)
		}
		counts[b.ServiceType]++
	}

	popular := NoPopularService
	best := 0
	for _, service := range order {
		if counts[service] > best {
			popular, best = service, counts[service]
		}
	}
	return popular
}

// naive drops the location marker, keeping the civil components.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
