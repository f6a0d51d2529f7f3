package domain

import (
	"time"
)

// CREATE TABLE public.hotels (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     city        TEXT,
//     star_rating NUMERIC,
//     latitude    DOUBLE PRECISION,
//     longitude   DOUBLE PRECISION,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Hotel struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	City       string    `gorm:"column:city;type:text" json:"city"`
	StarRating float64   `gorm:"column:star_rating;type:numeric" json:"star_rating"`
	Latitude   *float64  `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude  *float64  `gorm:"column:longitude" json:"longitude,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Hotel) TableName() string {
	return "hotels"
}

// Location returns the hotel's coordinates when both are known.
func (h Hotel) Location() (GeoPoint, bool) {
	return newGeoPoint(h.Latitude, h.Longitude)
}

// CREATE TABLE public.hotel_rooms (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     hotel_id     BIGINT NOT NULL REFERENCES hotels(id),
//     room_type    TEXT NOT NULL,
//     checkin_date DATE NOT NULL,
//     price        NUMERIC,
//     updated_at   TIMESTAMPTZ DEFAULT NOW()
// );

type HotelRoom struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID     uint64    `gorm:"column:hotel_id;not null" json:"hotel_id"`
	RoomType    string    `gorm:"column:room_type;type:text;not null" json:"room_type"`
	CheckinDate time.Time `gorm:"column:checkin_date;type:date;not null" json:"checkin_date"`
	Price       *float64  `gorm:"column:price;type:numeric" json:"price"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (HotelRoom) TableName() string {
	return "hotel_rooms"
}

// GeoPoint is a WGS84 coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newGeoPoint(lat, lon *float64) (GeoPoint, bool) {
	if lat == nil || lon == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *lat, Lon: *lon}, true
}
