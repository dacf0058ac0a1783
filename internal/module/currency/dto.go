package currency

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// CreateCurrencyRequest represents the input for creating a currency.
type CreateCurrencyRequest struct {
	Code          string `json:"code" form:"code" binding:"required,min=2,max=8"`
	Name          string `json:"name" form:"name" binding:"required,min=2,max=255"`
	Symbol        string `json:"symbol" form:"symbol" binding:"omitempty,max=8"`
	DecimalPlaces int    `json:"decimalPlaces" form:"decimalPlaces" binding:"gte=0,lte=8"`
}

// UpdateCurrencyRequest represents the input for fully updating a currency.
type UpdateCurrencyRequest struct {
	Code          string `json:"code" form:"code" binding:"required,min=2,max=8"`
	Name          string `json:"name" form:"name" binding:"required,min=2,max=255"`
	Symbol        string `json:"symbol" form:"symbol" binding:"omitempty,max=8"`
	DecimalPlaces int    `json:"decimalPlaces" form:"decimalPlaces" binding:"gte=0,lte=8"`
	Lifecycle     string `json:"lifecycle" form:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

// PatchCurrencyRequest represents a partial update; unset fields change nothing.
type PatchCurrencyRequest struct {
	Code          *string `json:"code" binding:"omitempty,min=2,max=8"`
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	Symbol        *string `json:"symbol" binding:"omitempty,max=8"`
	DecimalPlaces *int    `json:"decimalPlaces" binding:"omitempty,gte=0,lte=8"`
	Lifecycle     *string `json:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

func bindCreate(c *gin.Context) (*domain.Currency, bool) {
	var req CreateCurrencyRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return &domain.Currency{
		Code:          strings.TrimSpace(req.Code),
		Name:          strings.TrimSpace(req.Name),
		Symbol:        strings.TrimSpace(req.Symbol),
		DecimalPlaces: req.DecimalPlaces,
	}, true
}

func bindUpdate(c *gin.Context) (refdata.Mutator[domain.Currency], bool) {
	var req UpdateCurrencyRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(cu *domain.Currency) (bool, error) {
		cu.Code = strings.TrimSpace(req.Code)
		cu.Name = strings.TrimSpace(req.Name)
		cu.Symbol = strings.TrimSpace(req.Symbol)
		cu.DecimalPlaces = req.DecimalPlaces
		if req.Lifecycle != "" {
			l, ok := domain.ParseLifecycle(req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			cu.Lifecycle = l
		}
		return true, nil
	}, true
}

func bindPatch(c *gin.Context) (refdata.Mutator[domain.Currency], bool) {
	var req PatchCurrencyRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(cu *domain.Currency) (bool, error) {
		changed := false
		if req.Code != nil {
			cu.Code = strings.TrimSpace(*req.Code)
			changed = true
		}
		if req.Name != nil {
			cu.Name = strings.TrimSpace(*req.Name)
			changed = true
		}
		if req.Symbol != nil {
			cu.Symbol = strings.TrimSpace(*req.Symbol)
			changed = true
		}
		if req.DecimalPlaces != nil {
			cu.DecimalPlaces = *req.DecimalPlaces
			changed = true
		}
		if req.Lifecycle != nil {
			l, ok := domain.ParseLifecycle(*req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			cu.Lifecycle = l
			changed = true
		}
		return changed, nil
	}, true
}
