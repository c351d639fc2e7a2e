package model

import "database/sql"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldFloorNumber = "floor_number"
	FieldBuildingID  = "building_id"
	FieldCapacity    = "capacity"
	FieldImageURL    = "image_url"
)

const (
	RoomDeviceTableName   = "room_devices"
	RoomDeviceFieldRoom   = "room_id"
	RoomDeviceFieldDevice = "device_id"
)

type Room struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	FloorNumber int            `db:"floor_number"`
	BuildingID  int64          `db:"building_id"`
	Capacity    int            `db:"capacity"`
	ImageURL    sql.NullString `db:"image_url"`
}

// RoomView is a room joined with its building.
type RoomView struct {
	Room
	BuildingName string `db:"building_name" table:"buildings" column:"name"`
}

func (RoomView) GetJoinQuery() string {
	return "JOIN buildings ON buildings.id = rooms.building_id"
}

// RoomDeviceName is one device name attached to a room.
type RoomDeviceName struct {
	RoomID int64  `db:"room_id"`
	Name   string `db:"name"`
}
