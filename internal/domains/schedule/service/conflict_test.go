package service

import (
	"errors"
	"net/http"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"scams/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflicts(t *testing.T) {
	hours := dto.HourRange{Start: 8, End: 12}

	assert.NoError(t, checkConflicts(hours, nil))
	assert.NoError(t, checkConflicts(hours, []model.Hour{7, 12, 13}))

	err := checkConflicts(hours, []model.Hour{11, 9})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	var conflict *SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, model.Hour(9), conflict.Hour)
	assert.Equal(t, "time slot 09:00 already booked for this room", err.Error())
}
