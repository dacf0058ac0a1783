package domain

// Pricing is a referential fee schedule entry. Rate is a percentage,
// MinAmount/MaxAmount bound the transaction amounts the entry applies to.
type Pricing struct {
	Referential
	Code      string  `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Rate      float64 `gorm:"not null" json:"rate"`
	MinAmount float64 `gorm:"not null;default:0" json:"minAmount"`
	MaxAmount float64 `gorm:"not null;default:0" json:"maxAmount"`
	PartnerID *uint   `gorm:"index" json:"partnerId"`
}
