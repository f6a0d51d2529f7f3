package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID    uint64    `gorm:"primaryKey" json:"id"`
	Name  string    `gorm:"column:name;type:text;not null" json:"name"`
	Date  time.Time `gorm:"column:date;type:date;not null" json:"date"`
	Venue string    `gorm:"column:venue;type:text" json:"venue"`
}

func (Event) TableName() string {
	return "events"
}

// EventHistory is a past event kept for comparison with upcoming ones.
type EventHistory struct {
	ID                uint64            `gorm:"primaryKey" json:"id"`
	EventType         EventType         `gorm:"column:event_type;type:text;not null" json:"event_type"`
	Name              string            `gorm:"column:name;type:text" json:"name"`
	Date              time.Time         `gorm:"column:date;type:date" json:"date"`
	ActualAttendance  int               `gorm:"column:actual_attendance" json:"actual_attendance"`
	ObservedPriceLift float64           `gorm:"column:observed_price_lift;type:numeric" json:"observed_price_lift"`
	Metadata          datatypes.JSONMap `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`
}

func (EventHistory) TableName() string {
	return "event_history"
}
