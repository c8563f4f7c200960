package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks the latency of HTTP requests by route and status
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "afroboost_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"method", "route", "status"},
	)

	// DiscountValidations counts discount validation outcomes
	DiscountValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "afroboost_discount_validations_total",
			Help: "Discount code validation attempts by outcome",
		},
		[]string{"outcome"}, // valid or invalid
	)

	// ReservationsCreated counts created reservations
	ReservationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "afroboost_reservations_created_total",
			Help: "Total reservations created",
		},
	)
)

// RecordRequestDuration records one HTTP request observation
func RecordRequestDuration(method, route, status string, seconds float64) {
	RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// RecordDiscountValidation records a discount validation outcome
func RecordDiscountValidation(valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	DiscountValidations.WithLabelValues(outcome).Inc()
}
