package handlers

import (
	"tradebill/internal/domain/catalogs/material"
	"tradebill/internal/infrastructure/http/v1/dto"
)

// MaterialHandler provides HTTP handlers for the material catalog.
type MaterialHandler struct {
	*CatalogHandler[*material.Material, dto.CreateMaterialRequest, dto.UpdateMaterialRequest]
}

// NewMaterialHandler creates a material handler.
func NewMaterialHandler(base *BaseHandler, service *material.Service) *MaterialHandler {
	catalogHandler := NewCatalogHandler(base, CatalogHandlerConfig[*material.Material, dto.CreateMaterialRequest, dto.UpdateMaterialRequest]{
		Service:    service.CatalogService,
		EntityName: "material",
		MapCreateDTO: func(req dto.CreateMaterialRequest) (*material.Material, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateMaterialRequest, existing *material.Material) (*material.Material, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(m *material.Material) any {
			return dto.FromMaterial(m)
		},
	})

	return &MaterialHandler{CatalogHandler: catalogHandler}
}
