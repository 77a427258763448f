package models

import (
	"gorm.io/datatypes"
)

type Invoice struct {
	ID       int             `gorm:"primaryKey" json:"id"`
	CompCode string          `gorm:"column:comp_code;not null;index" json:"comp_code"`
	Amt      float64         `gorm:"not null" json:"amt"`
	Paid     bool            `gorm:"not null;default:false" json:"paid"`
	AddDate  datatypes.Date  `gorm:"column:add_date" json:"-"`
	PaidDate *datatypes.Date `gorm:"column:paid_date" json:"-"`
}
