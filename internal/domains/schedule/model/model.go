package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldLecturerID  = "lecturer_id"
	FieldDate        = "date"
	FieldStartTime   = "start_time"
	FieldPurpose     = "purpose"
	FieldTeamMembers = "team_members"
	FieldCreatedAt   = "created_at"

	RoomTableName     = "rooms"
	RoomFieldBuilding = "building_id"
)

// Schedule is one booked hour. Purpose and team members are stored as ciphertext.
type Schedule struct {
	ID          int64          `db:"id"`
	RoomID      int64          `db:"room_id"`
	LecturerID  int64          `db:"lecturer_id"`
	Date        Date           `db:"date"`
	StartTime   Hour           `db:"start_time"`
	Purpose     string         `db:"purpose"`
	TeamMembers sql.NullString `db:"team_members"`
	CreatedAt   time.Time      `db:"created_at" readonly:"true"`
}

// ScheduleDetail is a schedule joined with its room, building and lecturer.
type ScheduleDetail struct {
	ID           int64          `db:"id"`
	RoomID       int64          `db:"room_id"`
	RoomName     string         `db:"room_name"     table:"rooms"     column:"name"`
	BuildingID   int64          `db:"building_id"   table:"rooms"     column:"building_id"`
	BuildingName string         `db:"building_name" table:"buildings" column:"name"`
	LecturerID   int64          `db:"lecturer_id"`
	LecturerName string         `db:"lecturer_name" table:"users"     column:"full_name"`
	Date         Date           `db:"date"`
	StartTime    Hour           `db:"start_time"`
	Purpose      string         `db:"purpose"`
	TeamMembers  sql.NullString `db:"team_members"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (ScheduleDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = schedules.room_id " +
		"JOIN buildings ON buildings.id = rooms.building_id " +
		"JOIN users ON users.id = schedules.lecturer_id"
}
