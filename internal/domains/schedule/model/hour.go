package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const sqlTimeFormat = "15:04:05"

// Hour is an hour-aligned time of day stored in a TIME column.
type Hour int

func (h Hour) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}

// Value renders the hour the way Postgres expects a TIME literal.
func (h Hour) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:00:00", int(h)), nil
}

func (h *Hour) Scan(src any) error {
	var (
		parsed time.Time
		err    error
	)

	switch v := src.(type) {
	case time.Time:
		parsed = v
	case []byte:
		parsed, err = time.Parse(sqlTimeFormat, string(v))
	case string:
		parsed, err = time.Parse(sqlTimeFormat, v)
	default:
		return fmt.Errorf("cannot scan %T into Hour", src)
	}

	if err != nil {
		return fmt.Errorf("cannot scan %v into Hour: %w", src, err)
	}

	if parsed.Minute() != 0 || parsed.Second() != 0 {
		return fmt.Errorf("time %s is not on the hour", parsed.Format(sqlTimeFormat))
	}

	*h = Hour(parsed.Hour())

	return nil
}
