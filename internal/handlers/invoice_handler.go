package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"biztime-backend/internal/httperr"
	"biztime-backend/internal/models"
	"biztime-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	invoices *repository.InvoiceRepository
}

func NewInvoiceHandler(invoices *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// invoiceJSON shapes an invoice for the wire, with dates as YYYY-MM-DD
// strings and a null paid_date while unpaid.
func invoiceJSON(invoice *models.Invoice) gin.H {
	body := gin.H{
		"id":        invoice.ID,
		"comp_code": invoice.CompCode,
		"amt":       invoice.Amt,
		"paid":      invoice.Paid,
		"add_date":  time.Time(invoice.AddDate).Format("2006-01-02"),
		"paid_date": nil,
	}
	if invoice.PaidDate != nil {
		body["paid_date"] = time.Time(*invoice.PaidDate).Format("2006-01-02")
	}
	return body
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoices.List()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	shaped := make([]gin.H, 0, len(invoices))
	for i := range invoices {
		shaped = append(shaped, invoiceJSON(&invoices[i]))
	}
	c.JSON(http.StatusOK, gin.H{"invoices": shaped})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid invoice ID"))
		return
	}

	invoice, err := h.invoices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Respond(c, httperr.NotFound("Could not find invoice with id of %d", id))
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload struct {
		CompCode string  `json:"comp_code"`
		Amt      float64 `json:"amt"`
	}
	if err := c.BindJSON(&payload); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid payload"))
		return
	}

	invoice, err := h.invoices.Create(payload.CompCode, payload.Amt)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"invoice": invoiceJSON(invoice)})
}

// Update replaces amt and paid. paid_date is derived from the paid
// transition: false to true stamps today, true to false clears it, and no
// transition leaves it untouched. The read-then-save window is not atomic.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid invoice ID"))
		return
	}

	var payload struct {
		Amt  float64 `json:"amt"`
		Paid bool    `json:"paid"`
	}
	if err := c.BindJSON(&payload); err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid payload"))
		return
	}

	invoice, err := h.invoices.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Respond(c, httperr.NotFound("Can't update invoice with id of %d", id))
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	switch {
	case payload.Paid && !invoice.Paid:
		today := datatypes.Date(time.Now())
		invoice.PaidDate = &today
	case !payload.Paid && invoice.Paid:
		invoice.PaidDate = nil
	}
	invoice.Amt = payload.Amt
	invoice.Paid = payload.Paid

	if err := h.invoices.Save(invoice); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoiceJSON(invoice)})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid invoice ID"))
		return
	}

	rows, err := h.invoices.Delete(id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if rows == 0 {
		httperr.Respond(c, httperr.NotFound("Can't delete invoice with id of %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
