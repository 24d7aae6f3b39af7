package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrConflictingGuestCount is returned when a booking request names the
// guest count under several keys with different values.
var ErrConflictingGuestCount = errors.New("conflicting guest counts")

// dateLayouts are the accepted encodings of a [Date], tried in order.
var dateLayouts = []string{time.RFC3339Nano, time.DateOnly}

// Date is a booking date as sent by clients: either an RFC 3339 timestamp
// or a calendar date ("2006-01-02", read as midnight UTC).
type Date time.Time

// UnmarshalJSON implements [json.Unmarshaler]. null leaves the zero time.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date(t)
			return nil
		}
	}

	return fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", s)
}

// Time returns d as a [time.Time].
func (d Date) Time() time.Time {
	return time.Time(d)
}

// BookingRequest is the body of POST /booking.
//
// The guest count is read from "guest", "guestCount" or "guests". A request
// naming it more than once must agree on the value.
type BookingRequest struct {
	PlaceID    string  `json:"place"`
	StartDate  Date    `json:"startDate"`
	EndDate    Date    `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`

	Guest      *int `json:"guest"`
	GuestCount *int `json:"guestCount"`
	GuestsAlt  *int `json:"guests"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Booking converts the request into a [Booking] without identifiers.
func (r BookingRequest) Booking() (Booking, error) {
	guests, err := r.guests()
	if err != nil {
		return Booking{}, err
	}

	return Booking{
		PlaceID:    r.PlaceID,
		StartDate:  r.StartDate.Time(),
		EndDate:    r.EndDate.Time(),
		TotalPrice: r.TotalPrice,
		Guests:     guests,
		Name:       r.Name,
		Phone:      r.Phone,
	}, nil
}

func (r BookingRequest) guests() (int, error) {
	var (
		count int
		set   bool
	)
	for _, v := range []*int{r.Guest, r.GuestCount, r.GuestsAlt} {
		if v == nil {
			continue
		}
		if set && *v != count {
			return 0, fmt.Errorf("%w: %d and %d", ErrConflictingGuestCount, count, *v)
		}
		count, set = *v, true
	}
	return count, nil
}
