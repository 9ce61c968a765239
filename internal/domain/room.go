package domain

import "time"

// Room describes a bookable room. RoomNumber doubles as the primary key.
type Room struct {
	RoomNumber  int
	RoomPrice   float64
	RoomType    string
	Image       string
	Description string
}

// RoomSearch carries the criteria for an availability query: rooms priced at
// or under MaxPrice with no reservation overlapping the stay window.
type RoomSearch struct {
	MaxPrice     float64
	CheckinDate  time.Time
	CheckoutDate time.Time
}
