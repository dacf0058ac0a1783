// Package currency instantiates the reference-data engine for the currency
// resource.
package currency

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// Module wires the currency resource routes.
type Module struct {
	handler *refdata.Handler[domain.Currency, *domain.Currency]
}

// Descriptor declares the currency resource.
func Descriptor() *refdata.Descriptor[domain.Currency] {
	return &refdata.Descriptor[domain.Currency]{
		Resource: "currency",
		FilterFields: []refdata.FilterField[domain.Currency]{
			{
				Param:  "code",
				Column: "code",
				Kind:   refdata.MatchExact,
				Text:   func(cu *domain.Currency) string { return cu.Code },
			},
			{
				Param:  "name",
				Column: "name",
				Kind:   refdata.MatchContains,
				Text:   func(cu *domain.Currency) string { return cu.Name },
			},
			refdata.LifecycleField(func(cu *domain.Currency) domain.Lifecycle { return cu.Lifecycle }),
		},
		NaturalKeys: []refdata.NaturalKey[domain.Currency]{
			{Field: "code", Value: func(cu *domain.Currency) string { return cu.Code }},
		},
		SortFields: []string{"code", "name", "created_at"},
	}
}

// NewModule assembles the currency resource on top of the generic engine.
func NewModule(db *gorm.DB, limits pkg.PageLimits) *Module {
	desc := Descriptor()
	repo := refdata.NewRepository(db, desc)
	svc := refdata.NewService[domain.Currency, *domain.Currency](repo, desc)
	return &Module{
		handler: refdata.NewHandler(svc, desc, limits, bindCreate, bindUpdate, bindPatch),
	}
}

// RegisterRoutes registers currency API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/currencies"))
}
