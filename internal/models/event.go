package models

// RepeatType enumerates the supported repeat cadences.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// Repeat is the stored repeat descriptor. It is kept as entered and is
// never expanded into concrete occurrences.
type Repeat struct {
	Type     RepeatType `json:"type"`
	Interval int        `json:"interval"`
	EndDate  string     `json:"endDate,omitempty"`
}

// IsRepeating returns true if this descriptor describes a repeating event.
func (r Repeat) IsRepeating() bool {
	return r.Type != "" && r.Type != RepeatNone && r.Interval > 0
}

// EventDraft holds the user-entered fields of an event before the
// persistence service has assigned an id.
//
// Date is a YYYY-MM-DD string and StartTime/EndTime are HH:MM strings.
// They are stored as entered; malformed values are caught downstream by
// the date/time parser, not here.
type EventDraft struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	Repeat           Repeat `json:"repeat"`
	NotificationTime int    `json:"notificationTime"` // minutes before start, 0 = at start
}

// Event is a persisted calendar event. ID is assigned by the persistence
// service on creation and is empty for a not-yet-saved draft.
type Event struct {
	ID string `json:"id"`
	EventDraft
}
