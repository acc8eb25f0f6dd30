package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

const maxAvatarBytes = 5 << 20

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]entity.CustomerSummary, error)
	UploadAvatar(ctx context.Context, customerID string, r io.Reader, filename, contentType string) (string, error)
}

type CustomerHandler struct {
	Svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{Svc: svc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	rows, err := h.Svc.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]customerOptionView, 0, len(rows))
	for _, r := range rows {
		out = append(out, customerOptionView{ID: r.ID, Name: r.Name})
	}
	response.Success(c, http.StatusOK, out, "customers", nil)
}

// Search GET /api/customers/search?query=
func (h *CustomerHandler) Search(c *gin.Context) {
	rows, err := h.Svc.SearchCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]customerSummaryView, 0, len(rows))
	for _, r := range rows {
		out = append(out, customerSummaryView{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  helpers.FormatCurrency(r.TotalPending),
			TotalPaid:     helpers.FormatCurrency(r.TotalPaid),
		})
	}
	response.Success(c, http.StatusOK, out, "customers", nil)
}

// UploadAvatar POST /api/customers/:id/avatar (multipart field "file")
func (h *CustomerHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "file is required", nil)
		return
	}
	if fh.Size > maxAvatarBytes {
		response.Error[any](c, http.StatusBadRequest, "file too large", map[string]any{"max_bytes": maxAvatarBytes})
		return
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		response.Error[any](c, http.StatusBadRequest, "file must be an image", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read file", nil)
		return
	}
	defer f.Close()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), c.Param("id"), f, fh.Filename, ct)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "avatar uploaded", nil)
}
