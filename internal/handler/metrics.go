package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "account_registrations_total",
		Help: "Total number of successful account registrations.",
	})

	deletionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "account_deletions_total",
		Help: "Total number of successful account deletions.",
	})

	authenticationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_authentications_total",
			Help: "Total number of authentication attempts by mode and status.",
		},
		[]string{"mode", "status"},
	)
)
