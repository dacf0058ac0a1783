package partner

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// CreatePartnerRequest represents the input for creating a partner.
type CreatePartnerRequest struct {
	Code                    string `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name                    string `json:"name" form:"name" binding:"required,min=2,max=255"`
	ICE                     string `json:"ice" form:"ice" binding:"required,min=2,max=32"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber" form:"taxIdentificationNumber" binding:"required,min=2,max=32"`
	RIB                     string `json:"rib" form:"rib" binding:"omitempty,max=34"`
	Category                string `json:"category" form:"category" binding:"required,oneof=standard premium institutional"`
	CountryID               *uint  `json:"countryId" form:"countryId" binding:"omitempty,gt=0"`
	BankID                  *uint  `json:"bankId" form:"bankId" binding:"omitempty,gt=0"`
}

// UpdatePartnerRequest represents the input for fully updating a partner.
type UpdatePartnerRequest struct {
	Code                    string `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name                    string `json:"name" form:"name" binding:"required,min=2,max=255"`
	ICE                     string `json:"ice" form:"ice" binding:"required,min=2,max=32"`
	TaxIdentificationNumber string `json:"taxIdentificationNumber" form:"taxIdentificationNumber" binding:"required,min=2,max=32"`
	RIB                     string `json:"rib" form:"rib" binding:"omitempty,max=34"`
	Category                string `json:"category" form:"category" binding:"required,oneof=standard premium institutional"`
	CountryID               *uint  `json:"countryId" form:"countryId" binding:"omitempty,gt=0"`
	BankID                  *uint  `json:"bankId" form:"bankId" binding:"omitempty,gt=0"`
	Lifecycle               string `json:"lifecycle" form:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

// PatchPartnerRequest represents a partial update; unset fields change nothing.
type PatchPartnerRequest struct {
	Code                    *string `json:"code" binding:"omitempty,min=2,max=32"`
	Name                    *string `json:"name" binding:"omitempty,min=2,max=255"`
	ICE                     *string `json:"ice" binding:"omitempty,min=2,max=32"`
	TaxIdentificationNumber *string `json:"taxIdentificationNumber" binding:"omitempty,min=2,max=32"`
	RIB                     *string `json:"rib" binding:"omitempty,max=34"`
	Category                *string `json:"category" binding:"omitempty,oneof=standard premium institutional"`
	CountryID               *uint   `json:"countryId" binding:"omitempty,gt=0"`
	BankID                  *uint   `json:"bankId" binding:"omitempty,gt=0"`
	Lifecycle               *string `json:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

func bindCreate(c *gin.Context) (*domain.Partner, bool) {
	var req CreatePartnerRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}

	category, ok := domain.ParsePartnerCategory(req.Category)
	if !ok {
		pkg.Error(c, domain.Validation("category must be standard, premium, or institutional"))
		return nil, false
	}

	return &domain.Partner{
		Code:                    strings.TrimSpace(req.Code),
		Name:                    strings.TrimSpace(req.Name),
		ICE:                     strings.TrimSpace(req.ICE),
		TaxIdentificationNumber: strings.TrimSpace(req.TaxIdentificationNumber),
		RIB:                     strings.TrimSpace(req.RIB),
		Category:                category,
		CountryID:               req.CountryID,
		BankID:                  req.BankID,
	}, true
}

func bindUpdate(c *gin.Context) (refdata.Mutator[domain.Partner], bool) {
	var req UpdatePartnerRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(p *domain.Partner) (bool, error) {
		category, ok := domain.ParsePartnerCategory(req.Category)
		if !ok {
			return false, domain.Validation("category must be standard, premium, or institutional")
		}

		p.Code = strings.TrimSpace(req.Code)
		p.Name = strings.TrimSpace(req.Name)
		p.ICE = strings.TrimSpace(req.ICE)
		p.TaxIdentificationNumber = strings.TrimSpace(req.TaxIdentificationNumber)
		p.RIB = strings.TrimSpace(req.RIB)
		p.Category = category
		p.CountryID = req.CountryID
		p.BankID = req.BankID
		if req.Lifecycle != "" {
			l, ok := domain.ParseLifecycle(req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			p.Lifecycle = l
		}
		return true, nil
	}, true
}

func bindPatch(c *gin.Context) (refdata.Mutator[domain.Partner], bool) {
	var req PatchPartnerRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(p *domain.Partner) (bool, error) {
		changed := false
		if req.Code != nil {
			p.Code = strings.TrimSpace(*req.Code)
			changed = true
		}
		if req.Name != nil {
			p.Name = strings.TrimSpace(*req.Name)
			changed = true
		}
		if req.ICE != nil {
			p.ICE = strings.TrimSpace(*req.ICE)
			changed = true
		}
		if req.TaxIdentificationNumber != nil {
			p.TaxIdentificationNumber = strings.TrimSpace(*req.TaxIdentificationNumber)
			changed = true
		}
		if req.RIB != nil {
			p.RIB = strings.TrimSpace(*req.RIB)
			changed = true
		}
		if req.Category != nil {
			category, ok := domain.ParsePartnerCategory(*req.Category)
			if !ok {
				return false, domain.Validation("category must be standard, premium, or institutional")
			}
			p.Category = category
			changed = true
		}
		if req.CountryID != nil {
			p.CountryID = req.CountryID
			changed = true
		}
		if req.BankID != nil {
			p.BankID = req.BankID
			changed = true
		}
		if req.Lifecycle != nil {
			l, ok := domain.ParseLifecycle(*req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			p.Lifecycle = l
			changed = true
		}
		return changed, nil
	}, true
}
