// Package partner instantiates the reference-data engine for the partner
// resource. Partners carry three independent natural keys (code, ICE, tax
// identification number), a category enum, and foreign keys to country and
// bank.
package partner

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// Module wires the partner resource routes.
type Module struct {
	handler *refdata.Handler[domain.Partner, *domain.Partner]
}

// Descriptor declares the partner resource.
func Descriptor() *refdata.Descriptor[domain.Partner] {
	return &refdata.Descriptor[domain.Partner]{
		Resource: "partner",
		FilterFields: []refdata.FilterField[domain.Partner]{
			{
				Param:  "code",
				Column: "code",
				Kind:   refdata.MatchExact,
				Text:   func(p *domain.Partner) string { return p.Code },
			},
			{
				Param:  "name",
				Column: "name",
				Kind:   refdata.MatchContains,
				Text:   func(p *domain.Partner) string { return p.Name },
			},
			{
				Param:  "category",
				Column: "category",
				Kind:   refdata.MatchEnum,
				Parse: func(raw string) (string, bool) {
					cat, ok := domain.ParsePartnerCategory(raw)
					return string(cat), ok
				},
				Text: func(p *domain.Partner) string { return string(p.Category) },
			},
			{
				Param:  "countryId",
				Column: "country_id",
				Kind:   refdata.MatchReference,
				Ref: func(p *domain.Partner) uint {
					if p.CountryID == nil {
						return 0
					}
					return *p.CountryID
				},
			},
			{
				Param:  "bankId",
				Column: "bank_id",
				Kind:   refdata.MatchReference,
				Ref: func(p *domain.Partner) uint {
					if p.BankID == nil {
						return 0
					}
					return *p.BankID
				},
			},
			refdata.LifecycleField(func(p *domain.Partner) domain.Lifecycle { return p.Lifecycle }),
		},
		NaturalKeys: []refdata.NaturalKey[domain.Partner]{
			{Field: "code", Value: func(p *domain.Partner) string { return p.Code }},
			{Field: "ice", Value: func(p *domain.Partner) string { return p.ICE }},
			{Field: "tax_identification_number", Value: func(p *domain.Partner) string { return p.TaxIdentificationNumber }},
		},
		SortFields: []string{"code", "name", "category", "created_at"},
	}
}

// NewModule assembles the partner resource on top of the generic engine.
func NewModule(db *gorm.DB, limits pkg.PageLimits) *Module {
	desc := Descriptor()
	repo := refdata.NewRepository(db, desc)
	svc := refdata.NewService[domain.Partner, *domain.Partner](repo, desc)
	return &Module{
		handler: refdata.NewHandler(svc, desc, limits, bindCreate, bindUpdate, bindPatch),
	}
}

// RegisterRoutes registers partner API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/partners"))
}
