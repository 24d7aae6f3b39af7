// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Booking is a reservation of a [Place] made by a user.
type Booking struct {
	// BookingID is the unique identifier of the booking (UUIDv7 string).
	BookingID string `json:"id" bson:"_id"`

	// PlaceID references the booked listing.
	PlaceID string `json:"place" bson:"place_id"`

	// UserID is the user who made the booking.
	UserID string `json:"user" bson:"user_id"`

	StartDate  time.Time `json:"startDate" bson:"start_date"`
	EndDate    time.Time `json:"endDate" bson:"end_date"`
	TotalPrice float64   `json:"totalPrice" bson:"total_price"`
	Guests     int       `json:"guest" bson:"guests"`

	// Name and Phone are optional contact details of the guest.
	Name  string `json:"name,omitempty" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}

// BookingDetails is a booking joined at read time with the place it
// references. The embedded Booking.PlaceID is shadowed in JSON by the
// resolved Place, so clients receive the full listing under "place".
type BookingDetails struct {
	Booking

	Place Place `json:"place"`
}
