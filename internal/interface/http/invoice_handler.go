package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "github.com/oksasatya/invoice-dashboard/internal/application"
	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
	"github.com/oksasatya/invoice-dashboard/pkg/validation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type InvoiceService interface {
	ListInvoices(ctx context.Context, query string, page int) ([]entity.InvoiceRow, error)
	CountInvoicePages(ctx context.Context, query string) (int, error)
	ExportInvoices(ctx context.Context, query string) ([]entity.InvoiceRow, error)
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)
	CreateInvoice(ctx context.Context, form app.InvoiceForm) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, form app.InvoiceForm) (*entity.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

type InvoiceHandler struct {
	Svc InvoiceService
}

func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc}
}

// pageParam reads ?page=, treating anything unparsable as 1.
func pageParam(c *gin.Context) int {
	p, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// List GET /api/invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("query")
	page := pageParam(c)

	rows, err := h.Svc.ListInvoices(ctx, query, page)
	if err != nil {
		writeError(c, err)
		return
	}
	pages, err := h.Svc.CountInvoicePages(ctx, query)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]invoiceRowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, toInvoiceRowView(r))
	}
	response.Success(c, http.StatusOK, gin.H{
		"invoices":    out,
		"total_pages": pages,
		"page":        page,
	}, "invoices", nil)
}

// Pages GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.Svc.CountInvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total_pages": pages}, "invoice pages", nil)
}

// Export GET /api/invoices/export?query=
func (h *InvoiceHandler) Export(c *gin.Context) {
	rows, err := h.Svc.ExportInvoices(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([][]any, 0, len(rows))
	for _, r := range rows {
		data = append(data, []any{r.Name, r.Email, helpers.FormatCurrency(r.Amount), r.Date.Format(isoDate), string(r.Status)})
	}
	var buf bytes.Buffer
	if err := helpers.WriteSheet(&buf, "Invoices", []string{"Customer", "Email", "Amount", "Date", "Status"}, data); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "Failed to export invoices.", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.Svc.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toInvoiceFormView(inv), "invoice", nil)
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var form app.InvoiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	inv, err := h.Svc.CreateInvoice(c.Request.Context(), form)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toInvoiceFormView(inv), "Created Invoice.", nil)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	var form app.InvoiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	inv, err := h.Svc.UpdateInvoice(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toInvoiceFormView(inv), "Updated Invoice.", nil)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteInvoice(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "Deleted Invoice.", nil)
}
