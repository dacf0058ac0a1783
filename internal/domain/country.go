package domain

// Country is a referential country record.
type Country struct {
	Referential
	Code        string `gorm:"size:8;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:255;not null" json:"name"`
	PhonePrefix string `gorm:"size:8" json:"phonePrefix"`
}
