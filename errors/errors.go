package errors

import "fmt"

var (
	ErrEmptyReportSet         = fmt.Errorf("report set has no channel report")
	ErrHeterogeneousReportSet = fmt.Errorf("channel report built with a different week grid")
	ErrInvalidTimestamp       = fmt.Errorf("invalid message timestamp")
	ErrNoChannelMatched       = fmt.Errorf("no channel matches the allow-list")
	ErrEmptyAllowList         = fmt.Errorf("channel allow-list is empty")
)
