package domain

// Currency is a referential currency record.
type Currency struct {
	Referential
	Code          string `gorm:"size:8;uniqueIndex;not null" json:"code"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Symbol        string `gorm:"size:8" json:"symbol"`
	DecimalPlaces int    `gorm:"not null;default:2" json:"decimalPlaces"`
}
