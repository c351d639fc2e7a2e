package dto_test

import (
	"net/http"
	"net/url"
	"scams/internal/domains/room/model/dto"
	"scams/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestNewTimeWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    *dto.TimeWindow
		wantErr error
	}{
		{
			name:  "hour aligned",
			start: "2025-12-10T10:00:00Z",
			end:   "2025-12-10T12:00:00Z",
			want:  &dto.TimeWindow{Date: "2025-12-10", Start: "10:00:00", End: "12:00:00"},
		},
		{
			name:  "start inside a booked hour is truncated",
			start: "2025-12-10T10:30:00Z",
			end:   "2025-12-10T11:15:00Z",
			want:  &dto.TimeWindow{Date: "2025-12-10", Start: "10:00:00", End: "11:15:00"},
		},
		{
			name:  "ends at midnight",
			start: "2025-12-10T22:00:00Z",
			end:   "2025-12-11T00:00:00Z",
			want:  &dto.TimeWindow{Date: "2025-12-10", Start: "22:00:00", End: "24:00:00"},
		},
		{
			name:    "crosses midnight",
			start:   "2025-12-10T23:00:00Z",
			end:     "2025-12-11T01:00:00Z",
			wantErr: dto.ErrWindowSpansDays,
		},
		{
			name:    "zero length",
			start:   "2025-12-10T10:00:00Z",
			end:     "2025-12-10T10:00:00Z",
			wantErr: dto.ErrWindowOrder,
		},
		{
			name:    "reversed",
			start:   "2025-12-10T12:00:00Z",
			end:     "2025-12-10T10:00:00Z",
			wantErr: dto.ErrWindowOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dto.NewTimeWindow(at(tt.start), at(tt.end))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoomCriteria(t *testing.T) {
	query := url.Values{
		"building_id":  {"2"},
		"device_ids":   {"3,1", "4"},
		"min_capacity": {"20"},
		"start_time":   {"2025-12-10T10:00:00Z"},
		"end_time":     {"2025-12-10T12:00:00Z"},
	}

	criteria, err := dto.ParseRoomCriteria(query)
	require.NoError(t, err)

	require.NotNil(t, criteria.BuildingID)
	assert.Equal(t, int64(2), *criteria.BuildingID)
	assert.Equal(t, []int64{3, 1, 4}, criteria.DeviceIDs)
	require.NotNil(t, criteria.MinCapacity)
	assert.Equal(t, 20, *criteria.MinCapacity)
	assert.Equal(t, &dto.TimeWindow{Date: "2025-12-10", Start: "10:00:00", End: "12:00:00"}, criteria.Window)
}

func TestParseRoomCriteria_Empty(t *testing.T) {
	criteria, err := dto.ParseRoomCriteria(url.Values{})
	require.NoError(t, err)

	assert.Nil(t, criteria.BuildingID)
	assert.Nil(t, criteria.MinCapacity)
	assert.Nil(t, criteria.Window)
	assert.Empty(t, criteria.DeviceIDs)
}

func TestParseRoomCriteria_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"non numeric building", url.Values{"building_id": {"abc"}}},
		{"negative device", url.Values{"device_ids": {"-1"}}},
		{"zero capacity", url.Values{"min_capacity": {"0"}}},
		{"start without end", url.Values{"start_time": {"2025-12-10T10:00:00Z"}}},
		{"bad timestamp", url.Values{"start_time": {"10:00"}, "end_time": {"2025-12-10T12:00:00Z"}}},
		{"reversed window", url.Values{"start_time": {"2025-12-10T12:00:00Z"}, "end_time": {"2025-12-10T10:00:00Z"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dto.ParseRoomCriteria(tt.query)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestUniqueDeviceIDs(t *testing.T) {
	criteria := dto.RoomCriteria{DeviceIDs: []int64{4, 1, 4, 2, 1}}

	assert.Equal(t, []int64{1, 2, 4}, criteria.UniqueDeviceIDs())
	assert.Equal(t, []int64{4, 1, 4, 2, 1}, criteria.DeviceIDs)
}
