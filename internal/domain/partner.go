package domain

import "strings"

// PartnerCategory classifies a partner for pricing and routing rules.
type PartnerCategory string

const (
	PartnerStandard      PartnerCategory = "standard"
	PartnerPremium       PartnerCategory = "premium"
	PartnerInstitutional PartnerCategory = "institutional"
)

// ParsePartnerCategory parses a raw string into a PartnerCategory member,
// case-insensitively. The second return value reports whether the input
// named a valid member.
func ParsePartnerCategory(raw string) (PartnerCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PartnerStandard):
		return PartnerStandard, true
	case string(PartnerPremium):
		return PartnerPremium, true
	case string(PartnerInstitutional):
		return PartnerInstitutional, true
	default:
		return "", false
	}
}

// Partner is a referential business partner. Code, ICE, and the tax
// identification number are each independently unique natural keys,
// regardless of lifecycle state. CountryID and BankID reference records
// that may themselves be Disabled; holders of the reference are expected
// to check that state when it matters.
type Partner struct {
	Referential
	Code                    string          `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name                    string          `gorm:"size:255;not null" json:"name"`
	ICE                     string          `gorm:"column:ice;size:32;uniqueIndex;not null" json:"ice"`
	TaxIdentificationNumber string          `gorm:"size:32;uniqueIndex;not null" json:"taxIdentificationNumber"`
	RIB                     string          `gorm:"column:rib;size:34" json:"rib"`
	Category                PartnerCategory `gorm:"size:32;not null;default:standard;index" json:"category"`
	CountryID               *uint           `gorm:"index" json:"countryId"`
	BankID                  *uint           `gorm:"index" json:"bankId"`
}
