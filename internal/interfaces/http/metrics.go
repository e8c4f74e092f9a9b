package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ims_http_requests_total",
		Help: "Peticiones HTTP atendidas por método, ruta y código.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ims_http_request_duration_seconds",
		Help:    "Duración de las peticiones HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	accessDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ims_access_denied_total",
		Help: "Peticiones rechazadas por falta de permiso.",
	}, []string{"role", "permission"})

	validationRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ims_validation_rejected_total",
		Help: "Entradas rechazadas por validación. stage: shape, rules o dry_run.",
	}, []string{"stage", "route"})
)

func countRejected(c *fiber.Ctx, stage string) {
	validationRejected.WithLabelValues(stage, c.Route().Path).Inc()
}

// Metrics registra conteo y duración de cada petición usando la ruta registrada (no la URL).
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
