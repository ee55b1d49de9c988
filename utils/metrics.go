package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streetwise_orders_created_total",
		Help: "Customer orders accepted and persisted.",
	})

	PlatesOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streetwise_plates_opened_total",
		Help: "Dine-in plates opened on vendor dashboards.",
	})
)
