package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceholderAvatar replaces a missing avatar URL at read time.
const PlaceholderAvatar = "https://placehold.co/48"

// Shift origins. "source" marks shifts imported from an external source
// system, "schedule" shifts authored directly in the schedule.
const (
	OriginSource   = "source"
	OriginSchedule = "schedule"
)

// Shift is the normalized read-only projection served to clients.
type Shift struct {
	ID         string    `json:"id"`
	Start      time.Time `json:"shiftstart_datetime"`
	End        time.Time `json:"shiftend_datetime"`
	SiteID     string    `json:"site_id"`
	PositionID string    `json:"position_id"`
	WorkerID   string    `json:"worker_id"`
	Wage       float64   `json:"wage"`
	Earnings   float64   `json:"earnings"`
	Avatar     string    `json:"avatar"`
	Origin     string    `json:"origin"`
}

// ShiftDocument is the stored shape. Wage, earnings, avatar and origin are
// optional in the store; defaults are applied per read and never written back.
type ShiftDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Start      time.Time          `bson:"shiftstart_datetime"`
	End        time.Time          `bson:"shiftend_datetime"`
	SiteID     string             `bson:"site_id"`
	PositionID string             `bson:"position_id"`
	WorkerID   string             `bson:"worker_id"`
	Wage       *float64           `bson:"wage,omitempty"`
	Earnings   *float64           `bson:"earnings,omitempty"`
	Avatar     string             `bson:"avatar,omitempty"`
	Origin     string             `bson:"origin,omitempty"`
}

// Normalize converts a stored document into the client projection,
// substituting defaults for absent optional fields.
func (d ShiftDocument) Normalize() Shift {
	s := Shift{
		ID:         d.ID.Hex(),
		Start:      d.Start,
		End:        d.End,
		SiteID:     d.SiteID,
		PositionID: d.PositionID,
		WorkerID:   d.WorkerID,
		Avatar:     d.Avatar,
		Origin:     d.Origin,
	}
	if d.Wage != nil {
		s.Wage = *d.Wage
	}
	if d.Earnings != nil {
		s.Earnings = *d.Earnings
	}
	if s.Avatar == "" {
		s.Avatar = PlaceholderAvatar
	}
	if s.Origin == "" {
		s.Origin = OriginSchedule
	}
	return s
}
