package bank

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// CreateBankRequest represents the input for creating a bank.
type CreateBankRequest struct {
	Code string `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name string `json:"name" form:"name" binding:"required,min=2,max=255"`
}

// UpdateBankRequest represents the input for fully updating a bank.
// Lifecycle may be set to re-activate a disabled record.
type UpdateBankRequest struct {
	Code      string `json:"code" form:"code" binding:"required,min=2,max=32"`
	Name      string `json:"name" form:"name" binding:"required,min=2,max=255"`
	Lifecycle string `json:"lifecycle" form:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

// PatchBankRequest represents a partial update; unset fields change nothing.
type PatchBankRequest struct {
	Code      *string `json:"code" binding:"omitempty,min=2,max=32"`
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Lifecycle *string `json:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

func bindCreate(c *gin.Context) (*domain.Bank, bool) {
	var req CreateBankRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return &domain.Bank{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
	}, true
}

func bindUpdate(c *gin.Context) (refdata.Mutator[domain.Bank], bool) {
	var req UpdateBankRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(b *domain.Bank) (bool, error) {
		b.Code = strings.TrimSpace(req.Code)
		b.Name = strings.TrimSpace(req.Name)
		if req.Lifecycle != "" {
			l, ok := domain.ParseLifecycle(req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			b.Lifecycle = l
		}
		return true, nil
	}, true
}

func bindPatch(c *gin.Context) (refdata.Mutator[domain.Bank], bool) {
	var req PatchBankRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(b *domain.Bank) (bool, error) {
		changed := false
		if req.Code != nil {
			b.Code = strings.TrimSpace(*req.Code)
			changed = true
		}
		if req.Name != nil {
			b.Name = strings.TrimSpace(*req.Name)
			changed = true
		}
		if req.Lifecycle != nil {
			l, ok := domain.ParseLifecycle(*req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			b.Lifecycle = l
			changed = true
		}
		return changed, nil
	}, true
}
