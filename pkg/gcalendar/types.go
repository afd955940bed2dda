package gcalendar

import "time"

// CreateEventRequest describes an event to create.
type CreateEventRequest struct {
	CalendarID  string // empty means "primary"
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Jakarta"
}

// Event is a created calendar event.
type Event struct {
	ID       string
	HtmlLink string
}
