package mappers

import (
	"encoding/json"
	"time"
)

// marshalStringSlice serializes a string slice for a JSON column. Nil and
// empty slices both become "[]" because MySQL rejects non-JSON text in
// JSON columns.
func marshalStringSlice(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(values)
	return string(data)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}

func millisPtrToTime(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := millisToTime(*millis)
	return &t
}

func timePtrToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	m := t.UnixMilli()
	return &m
}
