package repository

import (
	"biztime-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns all companies, no filtering.
func (r *CompanyRepository) List() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Find(&companies).Error
	return companies, err
}

// GetWithIndustries fetches one company joined through the association table.
// The left joins keep a company with zero industries; the nil rows are
// filtered out of the returned names. Returns gorm.ErrRecordNotFound when no
// company row matches.
func (r *CompanyRepository) GetWithIndustries(code string) (*models.Company, []string, error) {
	var rows []struct {
		Code        string
		Name        string
		Description string
		Industry    *string
	}

	err := r.db.Table("companies").
		Select("companies.code, companies.name, companies.description, industries.industry").
		Joins("LEFT JOIN companies_industries ON companies_industries.company_code = companies.code").
		Joins("LEFT JOIN industries ON industries.code = companies_industries.industry_code").
		Where("companies.code = ?", code).
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	company := &models.Company{
		Code:        rows[0].Code,
		Name:        rows[0].Name,
		Description: rows[0].Description,
	}
	industries := []string{}
	for _, row := range rows {
		if row.Industry != nil {
			industries = append(industries, *row.Industry)
		}
	}
	return company, industries, nil
}

func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// Update replaces name and description for the row matching code and reports
// how many rows were touched.
func (r *CompanyRepository) Update(code, name, description string) (int64, error) {
	result := r.db.Model(&models.Company{}).
		Where("code = ?", code).
		Updates(map[string]any{"name": name, "description": description})
	return result.RowsAffected, result.Error
}

func (r *CompanyRepository) Delete(code string) (int64, error) {
	result := r.db.Where("code = ?", code).Delete(&models.Company{})
	return result.RowsAffected, result.Error
}

func (r *CompanyRepository) Exists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Company{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
