package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/SscSPs/cleaning_tracker/internal/render"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// RegisterInvoiceRoutes registers GET /invoice on rg.
func RegisterInvoiceRoutes(rg gin.IRoutes, invoiceService portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService}
	rg.GET("/invoice", h.getInvoice)
}

// getInvoice godoc
// @Summary Render an invoice
// @Description Bills one client's sessions and expenses for one calendar month
// @Tags invoices
// @Produce html
// @Produce application/pdf
// @Param client_id query string true "Client ID"
// @Param year query int true "Calendar year"
// @Param month query int true "Month 1-12"
// @Param format query string false "html (default) or pdf"
// @Success 200 {string} string "Rendered invoice"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoice [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("client_id")

	year, yerr := optionalIntQuery(c, "year")
	month, merr := optionalIntQuery(c, "month")
	if clientID == "" || year == nil || month == nil || yerr != nil || merr != nil {
		badRequest(c, logger, "Missing parameters: client_id, year and month are required", nil)
		return
	}

	renderer, err := render.ForFormat(c.Query("format"))
	if err != nil {
		badRequest(c, logger, err.Error(), err)
		return
	}

	invoice, err := h.invoiceService.ComposeInvoice(c.Request.Context(), clientID, *year, *month)
	if err != nil {
		respondError(c, logger, err, "Failed to compose invoice")
		return
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, invoice); err != nil {
		logger.Error("Failed to render invoice", slog.String("invoice_number", invoice.Number), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	if renderer.ContentType() == "application/pdf" {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", invoice.Number+".pdf"))
	}
	c.Data(http.StatusOK, renderer.ContentType(), buf.Bytes())
}
