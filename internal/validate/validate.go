// Package validate checks the start/end time-of-day pair before a save
// reaches the overlap engine.
package validate

import "github.com/seriparkdev/haru/internal/timeutil"

const (
	StartTimeMessage = "시작 시간은 종료 시간보다 빨라야 합니다."
	EndTimeMessage   = "종료 시간은 시작 시간보다 늦어야 합니다."
)

// TimeError carries the field-level messages shown next to the start and
// end time inputs. Both fields are empty when the pair is acceptable.
type TimeError struct {
	StartTimeError string
	EndTimeError   string
}

// HasError reports whether either field carries a message.
func (e TimeError) HasError() bool {
	return e.StartTimeError != "" || e.EndTimeError != ""
}

// TimeRange flags a start time that is not strictly before the end time.
// Empty or malformed fields produce no message here; the parser's lax
// policy catches those downstream.
func TimeRange(start, end string) TimeError {
	if start == "" || end == "" {
		return TimeError{}
	}
	s, ok := timeutil.ParseClock(start)
	if !ok {
		return TimeError{}
	}
	e, ok := timeutil.ParseClock(end)
	if !ok {
		return TimeError{}
	}
	if s >= e {
		return TimeError{StartTimeError: StartTimeMessage, EndTimeError: EndTimeMessage}
	}
	return TimeError{}
}
