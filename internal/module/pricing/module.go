// Package pricing instantiates the reference-data engine for the pricing
// resource, which exercises numeric range filters.
package pricing

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// Module wires the pricing resource routes.
type Module struct {
	handler *refdata.Handler[domain.Pricing, *domain.Pricing]
}

// Descriptor declares the pricing resource.
func Descriptor() *refdata.Descriptor[domain.Pricing] {
	return &refdata.Descriptor[domain.Pricing]{
		Resource: "pricing",
		FilterFields: []refdata.FilterField[domain.Pricing]{
			{
				Param:  "code",
				Column: "code",
				Kind:   refdata.MatchExact,
				Text:   func(p *domain.Pricing) string { return p.Code },
			},
			{
				Param:  "name",
				Column: "name",
				Kind:   refdata.MatchContains,
				Text:   func(p *domain.Pricing) string { return p.Name },
			},
			{
				Param:  "rateMin",
				Column: "rate",
				Kind:   refdata.MatchMin,
				Number: func(p *domain.Pricing) float64 { return p.Rate },
			},
			{
				Param:  "rateMax",
				Column: "rate",
				Kind:   refdata.MatchMax,
				Number: func(p *domain.Pricing) float64 { return p.Rate },
			},
			{
				Param:  "minAmount",
				Column: "min_amount",
				Kind:   refdata.MatchMin,
				Number: func(p *domain.Pricing) float64 { return p.MinAmount },
			},
			{
				Param:  "partnerId",
				Column: "partner_id",
				Kind:   refdata.MatchReference,
				Ref: func(p *domain.Pricing) uint {
					if p.PartnerID == nil {
						return 0
					}
					return *p.PartnerID
				},
			},
			refdata.LifecycleField(func(p *domain.Pricing) domain.Lifecycle { return p.Lifecycle }),
		},
		NaturalKeys: []refdata.NaturalKey[domain.Pricing]{
			{Field: "code", Value: func(p *domain.Pricing) string { return p.Code }},
		},
		SortFields: []string{"code", "name", "rate", "created_at"},
	}
}

// NewModule assembles the pricing resource on top of the generic engine.
func NewModule(db *gorm.DB, limits pkg.PageLimits) *Module {
	desc := Descriptor()
	repo := refdata.NewRepository(db, desc)
	svc := refdata.NewService[domain.Pricing, *domain.Pricing](repo, desc)
	return &Module{
		handler: refdata.NewHandler(svc, desc, limits, bindCreate, bindUpdate, bindPatch),
	}
}

// RegisterRoutes registers pricing API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/pricings"))
}
