// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Place is a lodging listing published by its owner.
//
// Every field except PlaceID and OwnerID is replaced wholesale on update;
// nested values (Photos, Perks) are never merged element by element.
type Place struct {
	// PlaceID is the unique identifier of the listing (UUIDv7 string).
	PlaceID string `json:"id" bson:"_id"`

	// OwnerID is the user who created the listing. It never changes after
	// creation.
	OwnerID string `json:"owner" bson:"owner_id"`

	Name        string `json:"name" bson:"name"`
	Title       string `json:"title" bson:"title"`
	Address     string `json:"address" bson:"address"`
	Description string `json:"description" bson:"description"`
	ExtraInfo   string `json:"extraInfo" bson:"extra_info"`

	// Photos is the ordered list of stored file names (see UploadService).
	Photos StringList `json:"photos" bson:"photos"`

	// Perks is the set of amenities offered by the listing.
	Perks StringList `json:"perks" bson:"perks"`

	// CheckIn and CheckOut are hours of the day.
	CheckIn  int `json:"checkIn" bson:"check_in"`
	CheckOut int `json:"checkOut" bson:"check_out"`

	MaxGuests int     `json:"maxGuests" bson:"max_guests"`
	Price     float64 `json:"price" bson:"price"`
}

// TableName returns the name of the database table
// associated with the Place model.
func (p Place) TableName() string {
	return "places"
}
