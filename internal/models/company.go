package models

type Company struct {
	Code        string `gorm:"primaryKey" json:"code"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}
