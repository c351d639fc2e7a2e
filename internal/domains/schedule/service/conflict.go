package service

import (
	"fmt"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"scams/shared/failure"
	"slices"
)

// SlotConflictError names the first requested hour that is already booked.
type SlotConflictError struct {
	Hour model.Hour
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("time slot %s already booked for this room", e.Hour)
}

// checkConflicts walks the requested hours in ascending order and reports the
// first one present in booked.
func checkConflicts(hours dto.HourRange, booked []model.Hour) error {
	for _, hour := range hours.Hours() {
		if slices.Contains(booked, hour) {
			conflict := &SlotConflictError{Hour: hour}

			return failure.ConflictWithCause(conflict.Error(), conflict)
		}
	}

	return nil
}
