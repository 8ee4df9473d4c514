// Package domain contains core concepts of the channel report.
// This file defines Message records and the Slack timestamp rules.
// Messages are immutable once built.
package domain

import (
	"channel-report/errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Message represents an immutable chat record.
type Message struct {
	Text      string
	Timestamp time.Time
}

// NewMessage converts a raw history record into a Message.
func NewMessage(raw RawMessage) (Message, error) {
	at, err := ParseTimestamp(raw.Ts)
	if err != nil {
		return Message{}, err
	}
	return Message{Text: raw.Text, Timestamp: at}, nil
}

// ParseTimestamp reads a Slack "ts" value ("1577836800.000200" or "1577836800").
// Both parts must be plain digits: a sign anywhere is rejected.
// The fractional part is read as microseconds.
func ParseTimestamp(ts string) (time.Time, error) {
	secPart, fracPart, hasFrac := strings.Cut(strings.TrimSpace(ts), ".")
	if !isDigits(secPart) || (hasFrac && (!isDigits(fracPart) || len(fracPart) > 6)) {
		return time.Time{}, fmt.Errorf("%w: %q", errors.ErrInvalidTimestamp, ts)
	}
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errors.ErrInvalidTimestamp, ts)
	}
	var micros int64
	if hasFrac {
		// "0002" means 200 microseconds
		micros, err = strconv.ParseInt(fracPart+strings.Repeat("0", 6-len(fracPart)), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", errors.ErrInvalidTimestamp, ts)
		}
	}
	return time.Unix(sec, micros*int64(time.Microsecond)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
