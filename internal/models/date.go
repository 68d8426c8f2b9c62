package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// maxDateMillis bounds numeric dates to the range a JavaScript Date can hold.
const maxDateMillis = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date is a calendar date/time taken from caller input. It decodes from
// ISO-8601 strings, plain dates and Unix millisecond numbers.
type Date struct {
	time.Time
}

// NewDate wraps an already constructed time.
func NewDate(t time.Time) Date {
	return Date{t}
}

// ParseDate coerces s into a time. Values without a zone are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	t, err := decodeDate(data)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Date{})}
	}
	d.Time = t
	return nil
}

func decodeDate(data []byte) (time.Time, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return time.Time{}, err
		}
		return ParseDate(s)
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return time.Time{}, err
	}
	if math.IsNaN(ms) || math.Abs(ms) > maxDateMillis {
		return time.Time{}, fmt.Errorf("timestamp %s out of range", data)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}
