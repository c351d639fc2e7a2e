package dto

import "scams/internal/domains/building/model"

type BuildingResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

func (r *ListBuildingsResponse) FromModels(models []model.Building) {
	r.Buildings = make([]BuildingResponse, len(models))

	for i, mod := range models {
		r.Buildings[i] = BuildingResponse{ID: mod.ID, Name: mod.Name}
	}
}
