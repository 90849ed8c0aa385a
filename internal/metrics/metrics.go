package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts successfully created orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_orders_created_total",
		Help: "Total number of orders created",
	})

	// PaymentsTotal counts finalized payments by method and terminal status.
	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payments_total",
		Help: "Total number of payments by method and terminal status",
	}, []string{"method", "status"})

	// PaymentValidationFailures counts payment requests rejected before a
	// record was persisted.
	PaymentValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_payment_validation_failures_total",
		Help: "Payment requests rejected during credential validation",
	}, []string{"reason"})
)
