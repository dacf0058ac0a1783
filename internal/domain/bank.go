package domain

// Bank is a referential banking institution.
type Bank struct {
	Referential
	Code string `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`
}
