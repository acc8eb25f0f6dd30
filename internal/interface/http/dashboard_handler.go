package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

type DashboardService interface {
	CardData(ctx context.Context) (entity.CardData, error)
	RevenueByMonth(ctx context.Context) ([]entity.Revenue, error)
	LatestInvoices(ctx context.Context) ([]entity.LatestInvoice, error)
}

type DashboardHandler struct {
	Svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// Cards GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.Svc.CardData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cardsView{
		NumberOfInvoices:     cards.NumberOfInvoices,
		NumberOfCustomers:    cards.NumberOfCustomers,
		TotalPaidInvoices:    helpers.FormatCurrency(cards.TotalPaid),
		TotalPendingInvoices: helpers.FormatCurrency(cards.TotalPending),
	}, "card data", nil)
}

// Revenue GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *gin.Context) {
	rows, err := h.Svc.RevenueByMonth(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]revenueView, 0, len(rows))
	for _, r := range rows {
		out = append(out, revenueView{Month: r.Month, Revenue: r.Revenue})
	}
	labels, top := revenueAxis(rows)
	response.Success(c, http.StatusOK, gin.H{
		"revenue":       out,
		"y_axis_labels": labels,
		"top_label":     top,
	}, "revenue", nil)
}

// Latest GET /api/dashboard/latest-invoices
func (h *DashboardHandler) Latest(c *gin.Context) {
	rows, err := h.Svc.LatestInvoices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]latestInvoiceView, 0, len(rows))
	for _, r := range rows {
		out = append(out, latestInvoiceView{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   helpers.FormatCurrency(r.Amount),
		})
	}
	response.Success(c, http.StatusOK, out, "latest invoices", nil)
}
