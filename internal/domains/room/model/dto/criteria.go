package dto

import (
	"errors"
	"fmt"
	"net/url"
	"scams/shared"
	"scams/shared/constant"
	gDto "scams/shared/dto"
	"scams/shared/failure"
	"scams/shared/timezone"
	"slices"
	"time"
)

const (
	sqlTimeFormat = "15:04:05"
	endOfDay      = "24:00:00"
)

var (
	ErrIncompleteWindow = errors.New("start_time and end_time must be supplied together")
	ErrWindowOrder      = errors.New("end_time must be after start_time")
	ErrWindowSpansDays  = errors.New("start_time and end_time must fall on the same date")
)

// TimeWindow is a same-day interval in the application timezone, rendered the way
// the schedules table stores dates and hour slots.
type TimeWindow struct {
	Date  string
	Start string
	End   string
}

// NewTimeWindow converts an RFC3339 interval into the slot range it overlaps.
// Schedule rows last one hour, so the start is truncated to its hour: a row starting
// at 09:00 overlaps a window opening at 09:30. An end at the following midnight is
// kept as 24:00:00 so the window can cover the last slot of the day.
func NewTimeWindow(start, end time.Time) (*TimeWindow, error) {
	start = timezone.ToAppTime(start)
	end = timezone.ToAppTime(end)

	if !end.After(start) {
		return nil, ErrWindowOrder
	}

	startDate := timezone.DateOf(start)
	endValue := end.Format(sqlTimeFormat)

	if !timezone.DateOf(end).Equal(startDate) {
		if !end.Equal(startDate.AddDate(0, 0, 1)) {
			return nil, ErrWindowSpansDays
		}

		endValue = endOfDay
	}

	return &TimeWindow{
		Date:  startDate.Format(constant.DateOnlyFormat),
		Start: fmt.Sprintf("%02d:00:00", start.Hour()),
		End:   endValue,
	}, nil
}

// RoomCriteria are the conjunctive filters of the room availability search.
// Nil fields and an empty device set impose no restriction.
type RoomCriteria struct {
	BuildingID  *int64
	DeviceIDs   []int64
	MinCapacity *int
	Window      *TimeWindow
	gDto.QueryParams
}

// UniqueDeviceIDs returns the requested devices as a sorted set.
func (c RoomCriteria) UniqueDeviceIDs() []int64 {
	ids := slices.Clone(c.DeviceIDs)
	slices.Sort(ids)

	return slices.Compact(ids)
}

// ParseRoomCriteria reads the list-rooms query string.
func ParseRoomCriteria(query url.Values) (RoomCriteria, error) {
	var (
		criteria RoomCriteria
		err      error
	)

	if criteria.BuildingID, err = shared.OptionalInt64(query, constant.RequestParamBuildingID); err != nil {
		return criteria, failure.BadRequest(err)
	}

	if criteria.DeviceIDs, err = shared.Int64List(query, constant.RequestParamDeviceIDs); err != nil {
		return criteria, failure.BadRequest(err)
	}

	if criteria.MinCapacity, err = shared.OptionalInt(query, constant.RequestParamMinCapacity); err != nil {
		return criteria, failure.BadRequest(err)
	}

	if criteria.MinCapacity != nil && *criteria.MinCapacity < 1 {
		return criteria, failure.BadRequestFromString("min_capacity must be at least 1")
	}

	rawStart := query.Get(constant.RequestParamStartTime)
	rawEnd := query.Get(constant.RequestParamEndTime)

	if (rawStart == "") != (rawEnd == "") {
		return criteria, failure.BadRequest(ErrIncompleteWindow)
	}

	if rawStart != "" {
		start, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			return criteria, failure.BadRequestFromString(fmt.Sprintf("%s must be an RFC3339 timestamp", constant.RequestParamStartTime))
		}

		end, err := time.Parse(time.RFC3339, rawEnd)
		if err != nil {
			return criteria, failure.BadRequestFromString(fmt.Sprintf("%s must be an RFC3339 timestamp", constant.RequestParamEndTime))
		}

		if criteria.Window, err = NewTimeWindow(start, end); err != nil {
			return criteria, failure.BadRequest(err)
		}
	}

	return criteria, nil
}
