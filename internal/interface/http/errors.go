package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/oksasatya/invoice-dashboard/internal/application"
	"github.com/oksasatya/invoice-dashboard/pkg/response"
)

const msgSomethingWrong = "Something went wrong."

// writeError maps service errors onto statuses. Only caller-safe messages leave the process.
func writeError(c *gin.Context, err error) {
	var (
		ve  *app.ValidationError
		dae *app.DataAccessError
	)
	switch {
	case errors.As(err, &ve):
		response.Error[any](c, http.StatusBadRequest, ve.Message, ve.Fields)
	case errors.Is(err, app.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "Invalid credentials.", nil)
	case errors.Is(err, app.ErrInvoiceNotFound):
		response.Error[any](c, http.StatusNotFound, "Invoice not found.", nil)
	case errors.Is(err, app.ErrCustomerNotFound):
		response.Error[any](c, http.StatusNotFound, "Customer not found.", nil)
	case errors.Is(err, app.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "User not found.", nil)
	case errors.Is(err, app.ErrStorageNotConfigured):
		response.Error[any](c, http.StatusServiceUnavailable, "Image uploads are not configured.", nil)
	case errors.As(err, &dae) && errors.Is(err, app.ErrBackendUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, dae.Message, nil)
	case errors.As(err, &dae):
		response.Error[any](c, http.StatusInternalServerError, dae.Message, nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, msgSomethingWrong, nil)
	}
}
