package country

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// CreateCountryRequest represents the input for creating a country.
type CreateCountryRequest struct {
	Code        string `json:"code" form:"code" binding:"required,min=2,max=8"`
	Name        string `json:"name" form:"name" binding:"required,min=2,max=255"`
	PhonePrefix string `json:"phonePrefix" form:"phonePrefix" binding:"omitempty,max=8"`
}

// UpdateCountryRequest represents the input for fully updating a country.
type UpdateCountryRequest struct {
	Code        string `json:"code" form:"code" binding:"required,min=2,max=8"`
	Name        string `json:"name" form:"name" binding:"required,min=2,max=255"`
	PhonePrefix string `json:"phonePrefix" form:"phonePrefix" binding:"omitempty,max=8"`
	Lifecycle   string `json:"lifecycle" form:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

// PatchCountryRequest represents a partial update; unset fields change nothing.
type PatchCountryRequest struct {
	Code        *string `json:"code" binding:"omitempty,min=2,max=8"`
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	PhonePrefix *string `json:"phonePrefix" binding:"omitempty,max=8"`
	Lifecycle   *string `json:"lifecycle" binding:"omitempty,oneof=active disabled"`
}

func bindCreate(c *gin.Context) (*domain.Country, bool) {
	var req CreateCountryRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return &domain.Country{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		PhonePrefix: strings.TrimSpace(req.PhonePrefix),
	}, true
}

func bindUpdate(c *gin.Context) (refdata.Mutator[domain.Country], bool) {
	var req UpdateCountryRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(co *domain.Country) (bool, error) {
		co.Code = strings.TrimSpace(req.Code)
		co.Name = strings.TrimSpace(req.Name)
		co.PhonePrefix = strings.TrimSpace(req.PhonePrefix)
		if req.Lifecycle != "" {
			l, ok := domain.ParseLifecycle(req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			co.Lifecycle = l
		}
		return true, nil
	}, true
}

func bindPatch(c *gin.Context) (refdata.Mutator[domain.Country], bool) {
	var req PatchCountryRequest
	if !pkg.BindAndValidate(c, &req) {
		return nil, false
	}
	return func(co *domain.Country) (bool, error) {
		changed := false
		if req.Code != nil {
			co.Code = strings.TrimSpace(*req.Code)
			changed = true
		}
		if req.Name != nil {
			co.Name = strings.TrimSpace(*req.Name)
			changed = true
		}
		if req.PhonePrefix != nil {
			co.PhonePrefix = strings.TrimSpace(*req.PhonePrefix)
			changed = true
		}
		if req.Lifecycle != nil {
			l, ok := domain.ParseLifecycle(*req.Lifecycle)
			if !ok {
				return false, domain.Validation("lifecycle must be active or disabled")
			}
			co.Lifecycle = l
			changed = true
		}
		return changed, nil
	}, true
}
