package usecases

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careconnect_match_requests_total",
		Help: "Match queries processed.",
	})

	bookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careconnect_bookings_created_total",
		Help: "Bookings created.",
	})

	bookingTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careconnect_booking_transitions_total",
		Help: "Booking status transitions, by resulting status.",
	}, []string{"status"})

	verificationCorrectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careconnect_verification_corrections_total",
		Help: "Verified flags corrected by the reconciliation sweep.",
	})
)
