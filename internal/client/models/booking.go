package models

import "strconv"

// RepeatType tells the server how a booking recurs. The scheduling itself is
// server-side; the client only carries the value.
type RepeatType int64

const (
	RepeatNone RepeatType = iota
	RepeatDaily
	RepeatWeekly
	RepeatMonthly
	RepeatYearly
)

func (r RepeatType) String() string {
	switch r {
	case RepeatNone:
		return "None"
	case RepeatDaily:
		return "Daily"
	case RepeatWeekly:
		return "Weekly"
	case RepeatMonthly:
		return "Monthly"
	case RepeatYearly:
		return "Yearly"
	default:
		return "Unknown"
	}
}

// LogEntry is one server-written audit line on a booking.
type LogEntry struct {
	Date  int64  `json:"date"`
	State string `json:"state"`
	Log   string `json:"log"`
}

// Booking is one reservation of a boat for a time slot, as the server
// serializes it. Id, State, Message, Next, Retry, BookingId, BoatId,
// BookStart, BookDur and Logs are owned by the server and never editable
// on the client.
type Booking struct {
	Id          int64      `json:"id"`
	Team        string     `json:"team"`
	Boat        string     `json:"boat"`
	Fallback    string     `json:"fallback,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Duration    int64      `json:"duration"`
	User        string     `json:"user"`
	Password    string     `json:"password"`
	Comment     string     `json:"comment"`
	Repeat      RepeatType `json:"repeat,omitempty"`
	State       string     `json:"state,omitempty"`
	BookingId   string     `json:"bookingid,omitempty"`
	BoatId      string     `json:"boatid,omitempty"`
	Message     string     `json:"message,omitempty"`
	Next        int64      `json:"next,omitempty"`
	Retry       int        `json:"retry,omitempty"`
	UserComment bool       `json:"usercomment"`
	WhatsAppTo  string     `json:"whatsapp,omitempty"`
	BookStart   int64      `json:"bookstart,omitempty"`
	BookDur     int64      `json:"bookdur,omitempty"`
	Logs        []LogEntry `json:"logs,omitempty"`
}

// BookingForm is the edit buffer for an in-progress add or update.
// Duration and Repeat stay strings until validation has confirmed they are
// numeric; empty string and absent input are equivalent.
type BookingForm struct {
	Boat       string
	Fallback   string
	Date       string
	Time       string
	Duration   string
	User       string
	Password   string
	Comment    string
	WhatsAppTo string
	Repeat     string
}

// Form converts a server record back into an edit buffer, e.g. when the user
// starts editing an existing booking.
func (b Booking) Form() BookingForm {
	f := BookingForm{
		Boat:       b.Boat,
		Fallback:   b.Fallback,
		Date:       b.Date,
		Time:       b.Time,
		Duration:   strconv.FormatInt(b.Duration, 10),
		User:       b.User,
		Password:   b.Password,
		Comment:    b.Comment,
		WhatsAppTo: b.WhatsAppTo,
	}
	if b.Repeat != RepeatNone {
		f.Repeat = strconv.FormatInt(int64(b.Repeat), 10)
	}
	return f
}
