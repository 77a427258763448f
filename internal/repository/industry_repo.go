package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type IndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

// IndustryWithCompany is one industry/company pairing from the association
// join. CompanyCode is nil for an industry with no associated company.
type IndustryWithCompany struct {
	Code        string  `json:"code"`
	Industry    string  `json:"industry"`
	CompanyCode *string `json:"company_code"`
}

// ListWithCompanies returns one row per association, left-joined so that
// unassociated industries still appear.
func (r *IndustryRepository) ListWithCompanies() ([]IndustryWithCompany, error) {
	var rows []IndustryWithCompany
	err := r.db.Table("industries").
		Select("industries.industry, industries.code, companies.code AS company_code").
		Joins("LEFT JOIN companies_industries ON companies_industries.industry_code = industries.code").
		Joins("LEFT JOIN companies ON companies.code = companies_industries.company_code").
		Scan(&rows).Error
	return rows, err
}

func (r *IndustryRepository) Create(industry *models.Industry) error {
	return r.db.Create(industry).Error
}

func (r *IndustryRepository) Exists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Industry{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Associate inserts one company/industry pair. Callers are expected to have
// checked both sides exist; a duplicate pair fails at the store.
func (r *IndustryRepository) Associate(companyCode, industryCode string) (*models.CompanyIndustry, error) {
	association := models.CompanyIndustry{
		CompanyCode:  companyCode,
		IndustryCode: industryCode,
	}
	if err := r.db.Create(&association).Error; err != nil {
		return nil, err
	}
	return &association, nil
}
