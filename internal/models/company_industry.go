package models

// CompanyIndustry records the many-to-many link between companies and
// industries. The composite primary key keeps each pair unique.
type CompanyIndustry struct {
	CompanyCode  string `gorm:"column:company_code;primaryKey" json:"company_code"`
	IndustryCode string `gorm:"column:industry_code;primaryKey" json:"industry_code"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}
