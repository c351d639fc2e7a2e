package dto_test

import (
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleRequest_HourRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    []model.Hour
		wantErr error
	}{
		{name: "two hours", start: "10:00", end: "12:00", want: []model.Hour{10, 11}},
		{name: "single hour", start: "23:00", end: "23:00", wantErr: dto.ErrEndBeforeStart},
		{name: "end before start", start: "14:00", end: "09:00", wantErr: dto.ErrEndBeforeStart},
		{name: "whole morning", start: "07:00", end: "11:00", want: []model.Hour{7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateScheduleRequest{StartTime: tt.start, EndTime: tt.end}

			hours, err := req.HourRange()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, hours.Hours())
		})
	}
}

func TestHourRange_Empty(t *testing.T) {
	assert.Empty(t, dto.HourRange{Start: 5, End: 5}.Hours())
	assert.Empty(t, dto.HourRange{Start: 6, End: 5}.Hours())
}
