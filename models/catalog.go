package models

// ServiceDurations maps a service type to its duration in minutes. The
// catalog is a business rule, kept here so it can be changed without touching
// handler code.
var ServiceDurations = map[string]int{
	"Haircut":  45,
	"Styling":  30,
	"Coloring": 120,
	"Manicure": 60,
	"Pedicure": 90,
	"Facial":   60,
}

// DefaultServiceDuration applies to service types missing from the catalog.
const DefaultServiceDuration = 60

func DurationFor(serviceType string) int {
	if d, ok := ServiceDurations[serviceType]; ok {
		return d
	}
	return DefaultServiceDuration
}
