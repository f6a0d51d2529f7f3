package domain

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// CompetitorDateLayout is the key format of CompetitorHotel.RoomsByDate.
const CompetitorDateLayout = "2006-01-02"

// CompetitorHotel is a scraped listing of a nearby property. RoomsByDate maps
// a date string to the rooms offered that day:
//
//	{"2026-10-15": [{"room_type": "Double", "price": 2300}], ...}
type CompetitorHotel struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"column:name;type:text" json:"name"`
	City        string         `gorm:"column:city;type:text" json:"city"`
	StarRating  float64        `gorm:"column:star_rating;type:numeric" json:"star_rating"`
	Latitude    *float64       `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude   *float64       `gorm:"column:longitude" json:"longitude,omitempty"`
	RoomsByDate datatypes.JSON `gorm:"column:rooms_by_date;type:jsonb" json:"rooms_by_date"`
}

func (CompetitorHotel) TableName() string {
	return "competitor_hotels"
}

type CompetitorRoom struct {
	RoomType string  `json:"room_type"`
	Price    float64 `json:"price"`
}

func (c CompetitorHotel) Location() (GeoPoint, bool) {
	return newGeoPoint(c.Latitude, c.Longitude)
}

// RoomsOn returns the rooms listed for date. A null or malformed table, a
// missing key, or a malformed entry for that date all mean "no data".
func (c CompetitorHotel) RoomsOn(date string) []CompetitorRoom {
	if len(c.RoomsByDate) == 0 {
		return nil
	}

	var byDate map[string]json.RawMessage
	if err := json.Unmarshal(c.RoomsByDate, &byDate); err != nil || byDate == nil {
		return nil
	}

	raw, ok := byDate[date]
	if !ok {
		return nil
	}

	var rooms []CompetitorRoom
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil
	}

	return rooms
}
