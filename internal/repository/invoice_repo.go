package repository

import (
	"time"

	"biztime-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Find(&invoices).Error
	return invoices, err
}

// GetByID fetches a single invoice. Not-found surfaces as
// gorm.ErrRecordNotFound.
func (r *InvoiceRepository) GetByID(id int) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Create inserts an unpaid invoice dated today. A comp_code with no matching
// company fails at the store with a constraint violation.
func (r *InvoiceRepository) Create(compCode string, amt float64) (*models.Invoice, error) {
	invoice := models.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  datatypes.Date(time.Now()),
	}
	if err := r.db.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Save writes back every field of the invoice, including a cleared paid_date.
func (r *InvoiceRepository) Save(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

func (r *InvoiceRepository) Delete(id int) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Invoice{})
	return result.RowsAffected, result.Error
}
