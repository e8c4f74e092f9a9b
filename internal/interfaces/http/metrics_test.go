package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

type shapeReq struct {
	Name string `json:"name" validate:"required"`
}

func TestMetrics_CuentaPorRutaRegistrada(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/metrics-test/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/metrics-test/:id", "204"))
	resp, err := app.Test(httptest.NewRequest("GET", "/metrics-test/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/metrics-test/:id", "204")))
}

func TestMetrics_ValidacionesRechazadas(t *testing.T) {
	app := fiber.New()
	app.Post("/rules-test", func(c *fiber.Ctx) error {
		return respondError(c, domain.NewValidationError(validation.Invalid("Name is required")))
	})
	app.Post("/shape-test", func(c *fiber.Ctx) error {
		var in shapeReq
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	rules := validationRejected.WithLabelValues("rules", "/rules-test")
	shapeC := validationRejected.WithLabelValues("shape", "/shape-test")
	r0, s0 := testutil.ToFloat64(rules), testutil.ToFloat64(shapeC)

	resp, err := app.Test(httptest.NewRequest("POST", "/rules-test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	req := httptest.NewRequest("POST", "/shape-test", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	assert.Equal(t, r0+1, testutil.ToFloat64(rules))
	assert.Equal(t, s0+1, testutil.ToFloat64(shapeC))
}
