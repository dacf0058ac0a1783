// Package bank instantiates the reference-data engine for the bank
// resource. The module is a descriptor plus DTO binding; all query,
// paging, uniqueness, and lifecycle behavior comes from the engine.
package bank

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/karimbh/refdata/internal/domain"
	"github.com/karimbh/refdata/internal/pkg"
	"github.com/karimbh/refdata/internal/refdata"
)

// Module wires the bank resource routes.
type Module struct {
	handler *refdata.Handler[domain.Bank, *domain.Bank]
}

// Descriptor declares the bank resource: filterable fields, the Code
// natural key, and sortable columns.
func Descriptor() *refdata.Descriptor[domain.Bank] {
	return &refdata.Descriptor[domain.Bank]{
		Resource: "bank",
		FilterFields: []refdata.FilterField[domain.Bank]{
			{
				Param:  "code",
				Column: "code",
				Kind:   refdata.MatchExact,
				Text:   func(b *domain.Bank) string { return b.Code },
			},
			{
				Param:  "name",
				Column: "name",
				Kind:   refdata.MatchContains,
				Text:   func(b *domain.Bank) string { return b.Name },
			},
			refdata.LifecycleField(func(b *domain.Bank) domain.Lifecycle { return b.Lifecycle }),
		},
		NaturalKeys: []refdata.NaturalKey[domain.Bank]{
			{Field: "code", Value: func(b *domain.Bank) string { return b.Code }},
		},
		SortFields: []string{"code", "name", "created_at"},
	}
}

// NewModule assembles the bank resource on top of the generic engine.
func NewModule(db *gorm.DB, limits pkg.PageLimits) *Module {
	desc := Descriptor()
	repo := refdata.NewRepository(db, desc)
	svc := refdata.NewService[domain.Bank, *domain.Bank](repo, desc)
	return &Module{
		handler: refdata.NewHandler(svc, desc, limits, bindCreate, bindUpdate, bindPatch),
	}
}

// RegisterRoutes registers bank API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/banks"))
}
