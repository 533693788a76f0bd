package db_models

import "github.com/shopspring/decimal"

type TrashBin struct {
	BaseModel
	Name      string          `gorm:"not null" json:"name"`
	BinCode   string          `gorm:"type:varchar(64);not null;index" json:"bin_code"`
	Latitude  decimal.Decimal `gorm:"type:numeric(10,7);not null" json:"latitude"`
	Longitude decimal.Decimal `gorm:"type:numeric(10,7);not null" json:"longitude"`
}

func (TrashBin) TableName() string { return "trash_bins" }
