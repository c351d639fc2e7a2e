package dto

import (
	"scams/internal/domains/room/model"
	"scams/shared/constant"
)

// RoomDetail is a room with its building name and the names of its devices.
type RoomDetail struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	FloorNumber  int      `json:"floor_number"`
	Capacity     int      `json:"capacity"`
	BuildingID   int64    `json:"building_id"`
	BuildingName string   `json:"building_name"`
	ImageURL     *string  `json:"image_url"`
	Devices      []string `json:"devices"`
}

func (r *RoomDetail) FromModel(view model.RoomView, devices []string) {
	r.ID = view.ID
	r.Name = view.Name
	r.FloorNumber = view.FloorNumber
	r.Capacity = view.Capacity
	r.BuildingID = view.BuildingID
	r.BuildingName = view.BuildingName
	r.ImageURL = nil

	if view.ImageURL.Valid && view.ImageURL.String != constant.Empty {
		url := view.ImageURL.String
		r.ImageURL = &url
	}

	r.Devices = devices
	if r.Devices == nil {
		r.Devices = []string{}
	}
}

type ListRoomsResponse struct {
	Rooms []RoomDetail `json:"rooms"`
}

// UploadImageRequest carries a room image read from a multipart form.
type UploadImageRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=image/png image/jpeg image/webp"`
	Size        int64  `json:"size"         validate:"gt=0,lte=2097152"`
	Data        []byte `json:"-"`
}

// Extension maps the accepted content types to a file extension.
func (r *UploadImageRequest) Extension() string {
	switch r.ContentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
