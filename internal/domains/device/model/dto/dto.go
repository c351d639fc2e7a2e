package dto

import "scams/internal/domains/device/model"

type DeviceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListDevicesResponse struct {
	Devices []DeviceResponse `json:"devices"`
}

func (r *ListDevicesResponse) FromModels(models []model.Device) {
	r.Devices = make([]DeviceResponse, len(models))

	for i, mod := range models {
		r.Devices[i] = DeviceResponse{ID: mod.ID, Name: mod.Name}
	}
}
