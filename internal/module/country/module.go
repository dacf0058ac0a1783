// Package country instantiates the reference-data engine for the country
// resource.
package country

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// Module wires the country resource routes.
type Module struct {
	handler *refdata.Handler[domain.Country, *domain.Country]
}

// Descriptor declares the country resource.
func Descriptor() *refdata.Descriptor[domain.Country] {
	return &refdata.Descriptor[domain.Country]{
		Resource: "country",
		FilterFields: []refdata.FilterField[domain.Country]{
			{
				Param:  "code",
				Column: "code",
				Kind:   refdata.MatchExact,
				Text:   func(co *domain.Country) string { return co.Code },
			},
			{
				Param:  "name",
				Column: "name",
				Kind:   refdata.MatchContains,
				Text:   func(co *domain.Country) string { return co.Name },
			},
			refdata.LifecycleField(func(co *domain.Country) domain.Lifecycle { return co.Lifecycle }),
		},
		NaturalKeys: []refdata.NaturalKey[domain.Country]{
			{Field: "code", Value: func(co *domain.Country) string { return co.Code }},
		},
		SortFields: []string{"code", "name", "created_at"},
	}
}

// NewModule assembles the country resource on top of the generic engine.
func NewModule(db *gorm.DB, limits pkg.PageLimits) *Module {
	desc := Descriptor()
	repo := refdata.NewRepository(db, desc)
	svc := refdata.NewService[domain.Country, *domain.Country](repo, desc)
	return &Module{
		handler: refdata.NewHandler(svc, desc, limits, bindCreate, bindUpdate, bindPatch),
	}
}

// RegisterRoutes registers country API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/countries"))
}
