package util

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// TimeAsMillis is stored and serialized as milliseconds since the UNIX epoch
// but used as a time.Time.
type TimeAsMillis time.Time

func NewTimeAsMillis(ms int64) TimeAsMillis {
	return TimeAsMillis(time.UnixMilli(ms))
}

func (t TimeAsMillis) Value() (driver.Value, error) {
	return driver.Value(t.Millis()), nil
}

func (t TimeAsMillis) Time() time.Time {
	return time.Time(t)
}

func (t TimeAsMillis) Millis() int64 {
	return time.Time(t).UnixMilli()
}

func (t *TimeAsMillis) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		tmp, err := strconv.ParseInt(string(src), 10, 64)
		if err != nil {
			return err
		}

		*t = NewTimeAsMillis(tmp)
	case int64:
		*t = NewTimeAsMillis(src)
	default:
		return fmt.Errorf("expected []byte or int64, got %T", src)
	}

	return nil
}

func (t TimeAsMillis) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Millis())
}

func (t *TimeAsMillis) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("expected milliseconds since epoch: %w", err)
	}

	*t = NewTimeAsMillis(ms)
	return nil
}

type NullTimeAsMillis struct {
	Time  TimeAsMillis
	Valid bool // Valid is true if TimeAsMillis is not NULL
}

func NewNullTimeAsMillis(t time.Time) NullTimeAsMillis {
	return NullTimeAsMillis{
		Time:  TimeAsMillis(t),
		Valid: true,
	}
}

// Scan implements the Scanner interface.
func (ns *NullTimeAsMillis) Scan(value interface{}) error {
	if value == nil {
		ns.Time, ns.Valid = TimeAsMillis{}, false
		return nil
	}

	ns.Valid = true

	return ns.Time.Scan(value)
}

// Value implements the driver Valuer interface.
func (ns NullTimeAsMillis) Value() (driver.Value, error) {
	if !ns.Valid {
		return nil, nil
	}

	return ns.Time.Value()
}

func (ns NullTimeAsMillis) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}

	return ns.Time.MarshalJSON()
}

func (ns *NullTimeAsMillis) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		ns.Time, ns.Valid = TimeAsMillis{}, false
		return nil
	}

	if err := ns.Time.UnmarshalJSON(data); err != nil {
		return err
	}

	ns.Valid = true
	return nil
}
