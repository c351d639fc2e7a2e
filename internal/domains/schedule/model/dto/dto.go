package dto

import (
	"errors"
	"fmt"
	"scams/internal/domains/schedule/model"
	"scams/shared/constant"
	"scams/shared/encryption"
	"time"
)

var ErrEndBeforeStart = errors.New("end_time must be after start_time")

type CreateScheduleRequest struct {
	RoomID      int64   `json:"room_id"      validate:"required,gt=0"`
	Date        string  `json:"date"         validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time"   validate:"required,hourtime"`
	EndTime     string  `json:"end_time"     validate:"required,hourtime"`
	Purpose     string  `json:"purpose"      validate:"required,max=500"`
	TeamMembers *string `json:"team_members" validate:"omitempty,max=1000"`
}

// HourRange is the half-open range [Start, End) of booked hours.
type HourRange struct {
	Start int
	End   int
}

// Hours lists every hour in the range in ascending order.
func (h HourRange) Hours() []model.Hour {
	hours := make([]model.Hour, 0, max(h.End-h.Start, 0))

	for hour := h.Start; hour < h.End; hour++ {
		hours = append(hours, model.Hour(hour))
	}

	return hours
}

// HourRange converts the validated HH:00 strings into a non-empty range.
func (r *CreateScheduleRequest) HourRange() (HourRange, error) {
	start, err := time.Parse(constant.DefaultValueHourFormat, r.StartTime)
	if err != nil {
		return HourRange{}, fmt.Errorf("invalid start_time: %w", err)
	}

	end, err := time.Parse(constant.DefaultValueHourFormat, r.EndTime)
	if err != nil {
		return HourRange{}, fmt.Errorf("invalid end_time: %w", err)
	}

	if end.Hour() <= start.Hour() {
		return HourRange{}, ErrEndBeforeStart
	}

	return HourRange{Start: start.Hour(), End: end.Hour()}, nil
}

// ScheduleDetail is a booked hour with its room, building and lecturer resolved and
// the encrypted fields opened.
type ScheduleDetail struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"room_id"`
	RoomName     string  `json:"room_name"`
	LecturerID   int64   `json:"lecturer_id"`
	LecturerName string  `json:"lecturer_name"`
	BuildingID   int64   `json:"building_id"`
	BuildingName string  `json:"building_name"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	Purpose      string  `json:"purpose"`
	TeamMembers  *string `json:"team_members"`
	CreatedAt    string  `json:"created_at"`
}

func (d *ScheduleDetail) FromModel(mod model.ScheduleDetail, cipher encryption.Cipher) error {
	lecturerName, err := cipher.Decrypt(mod.LecturerName)
	if err != nil {
		return fmt.Errorf("failed to decrypt lecturer name: %w", err)
	}

	purpose, err := cipher.Decrypt(mod.Purpose)
	if err != nil {
		return fmt.Errorf("failed to decrypt purpose: %w", err)
	}

	d.TeamMembers = nil

	if mod.TeamMembers.Valid {
		teamMembers, err := cipher.Decrypt(mod.TeamMembers.String)
		if err != nil {
			return fmt.Errorf("failed to decrypt team members: %w", err)
		}

		d.TeamMembers = &teamMembers
	}

	d.ID = mod.ID
	d.RoomID = mod.RoomID
	d.RoomName = mod.RoomName
	d.LecturerID = mod.LecturerID
	d.LecturerName = lecturerName
	d.BuildingID = mod.BuildingID
	d.BuildingName = mod.BuildingName
	d.Date = mod.Date.String()
	d.StartTime = mod.StartTime.String()
	d.Purpose = purpose
	d.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)

	return nil
}

// FromModels decrypts every row, keeping the input order.
func FromModels(models []model.ScheduleDetail, cipher encryption.Cipher) ([]ScheduleDetail, error) {
	details := make([]ScheduleDetail, len(models))

	for i, mod := range models {
		if err := details[i].FromModel(mod, cipher); err != nil {
			return nil, err
		}
	}

	return details, nil
}

type CreateScheduleResponse struct {
	Schedule []ScheduleDetail `json:"schedule"`
}

type MySchedulesResponse struct {
	LecturerID int64            `json:"lecturer_id"`
	Schedules  []ScheduleDetail `json:"schedules"`
}

type ListSchedulesResponse struct {
	Schedules []ScheduleDetail `json:"schedules"`
}

// ScheduleFilter selects schedules of one day. The optional ids narrow the result.
type ScheduleFilter struct {
	Date       model.Date
	RoomID     *int64
	LecturerID *int64
	BuildingID *int64
}

type RoomSlotsResponse struct {
	RoomID         int64    `json:"room_id"`
	Date           string   `json:"date"`
	ScheduledSlots []string `json:"scheduled_slots"`
}

// ScheduleCreatedEvent is published once per successful booking. It carries ids and
// hours only, never the encrypted fields.
type ScheduleCreatedEvent struct {
	ScheduleIDs []int64  `json:"schedule_ids"`
	RoomID      int64    `json:"room_id"`
	LecturerID  int64    `json:"lecturer_id"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	CreatedAt   string   `json:"created_at"`
}
