package pricing

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// CreatePricingRequest represents the input for creating a pricing entry.
type CreatePricingRequest struct {
	Code      string  `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name      string  `json:"name" form:"name" binding:"required,min=2,max=255"`
	Rate      float64 `json:"rate" form:"rate" binding:"gte=0"`
	MinAmount float64 `json:"minAmount" form:"minAmount" binding:"gte=0"`
	MaxAmount float64 `json:"maxAmount" form:"maxAmount" binding:"gte=0,gtefield=MinAmount"`
	PartnerID *uint   `json:"partnerId" form:"partnerId" binding:"omitempty,gt=0"`
}

// UpdatePricingRequest represents the input for fully updating a pricing entry.
type UpdatePricingRequest struct {
	Code      string  `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name      string  `json:"name" form:"name" binding:"required,min=2,max=255"`
	Rate      float64 `json:"rate" form:"rate" binding:"gte=0"`
	MinAmount float64 `json:"minAmount" form:"minAmount" binding:"gte=0"`
	MaxAmount float64 `json:"maxAmount" form:"maxAmount" binding:"gte=0,gtefield=MinAmount"`
	PartnerID *uint   `json:"partnerId" form:"partnerId" binding:"omitempty,gt=0"`
	Lifecycle string  `json:"lifecycle" form:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

// PatchPricingRequest represents a partial update; unset fields change nothing.
type PatchPricingRequest struct {
	Code      *string  `json:"code" binding:"omitempty,min=2,max=32"`
	Name      *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Rate      *float64 `json:"rate" binding:"omitempty,gte=0"`
	MinAmount *float64 `json:"minAmount" binding:"omitempty,gte=0"`
	MaxAmount *float64 `json:"maxAmount" binding:"omitempty,gte=0"`
	PartnerID *uint    `json:"partnerId" binding:"omitempty,gt=0"`
	Lifecycle *string  `json:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

func bindCreate(c *gin.Context) (*domain.Pricing, bool) {
	var req CreatePricingRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return &domain.Pricing{
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		Rate:      req.Rate,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
		PartnerID: req.PartnerID,
	}, true
}

func bindUpdate(c *gin.Context) (refdata.Mutator[domain.Pricing], bool) {
	var req UpdatePricingRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(p *domain.Pricing) (bool, error) {
		p.Code = strings.TrimSpace(req.Code)
		p.Name = strings.TrimSpace(req.Name)
		p.Rate = req.Rate
		p.MinAmount = req.MinAmount
		p.MaxAmount = req.MaxAmount
		p.PartnerID = req.PartnerID
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

func bindPatch(c *gin.Context) (refdata.Mutator[domain.Pricing], bool) {
	var req PatchPricingRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(p *domain.Pricing) (bool, error) {
		changed := false
		if req.Code != nil {
			p.Code = strings.TrimSpace(*req.Code)
			changed = true
		}
		if req.Name != nil {
			p.Name = strings.TrimSpace(*req.Name)
			changed = true
		}
		if req.Rate != nil {
			p.Rate = *req.Rate
			changed = true
		}
		if req.MinAmount != nil {
			p.MinAmount = *req.MinAmount
			changed = true
		}
		if req.MaxAmount != nil {
			p.MaxAmount = *req.MaxAmount
			changed = true
		}
		if req.PartnerID != nil {
			p.PartnerID = req.PartnerID
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
		if changed && p.MaxAmount != 0 && p.MaxAmount < p.MinAmount {
			return false, domain.Validation("maxAmount must be greater than or equal to minAmount")
		}
		return changed, nil
	}, true
}
