package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/serranotex/serrano-tex-ims/internal/application/analytics"
)

// DashboardHandler tablero y reportes de ventas.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// Get devuelve los KPIs del período.
// GET /api/dashboard?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Sin fechas: últimos 30 días incluyendo hoy. top_products solo se incluye si el rol
// tiene reports:advanced.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetRole(c), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesReport descarga el reporte de ventas del período en PDF.
// GET /api/reports/sales.pdf?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *DashboardHandler) SalesReport(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.SalesReportPDF(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdf, filename)
}
