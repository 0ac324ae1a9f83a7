package events

import (
	"time"

	"github.com/google/uuid"
)

// Category is a lookup table for event categories (concerts, theatre, ...).
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

func (Category) TableName() string {
	return "categories"
}

// EventType is a lookup table for event types (free, paid, members-only, ...).
type EventType struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100"`
}

func (EventType) TableName() string {
	return "event_types"
}

type Event struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null;size:255"`
	StartDate       time.Time `json:"start_date" gorm:"not null"`
	EndDate         time.Time `json:"end_date" gorm:"not null"`
	EventTime       string    `json:"event_time" gorm:"size:20"`
	Location        string    `json:"location" gorm:"not null;size:255"`
	MaxParticipants int       `json:"max_participants" gorm:"not null;check:max_participants > 0"`
	EventTypeID     uint      `json:"event_type_id"`
	CategoryID      uint      `json:"category_id"`
	OrganizerID     uuid.UUID `json:"organizer_id" gorm:"type:uuid;not null;index"`
	Status          Status    `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`

	// Review metadata, null until a reviewer rules on the event and cleared
	// again when the organizer edits it.
	ReviewedBy *uuid.UUID `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

type CreateEventRequest struct {
	Name            string    `json:"name" binding:"required,min=3,max=255"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	EventTime       string    `json:"event_time" binding:"omitempty,max=20"`
	Location        string    `json:"location" binding:"required,min=3,max=255"`
	MaxParticipants int       `json:"max_participants" binding:"required,min=1,max=100000"`
	EventTypeID     uint      `json:"event_type_id" binding:"required"`
	CategoryID      uint      `json:"category_id" binding:"required"`
}

// UpdateEventRequest carries a full edit: every editable field is overwritten
// and the event drops back to Pending.
type UpdateEventRequest struct {
	Name            string    `json:"name" binding:"required,min=3,max=255"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	EventTime       string    `json:"event_time" binding:"omitempty,max=20"`
	Location        string    `json:"location" binding:"required,min=3,max=255"`
	MaxParticipants int       `json:"max_participants" binding:"required,min=1,max=100000"`
	EventTypeID     uint      `json:"event_type_id" binding:"required"`
	CategoryID      uint      `json:"category_id" binding:"required"`
}

type EventResponse struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	EventTime       string     `json:"event_time"`
	Location        string     `json:"location"`
	MaxParticipants int        `json:"max_participants"`
	EventTypeID     uint       `json:"event_type_id"`
	CategoryID      uint       `json:"category_id"`
	OrganizerID     string     `json:"organizer_id"`
	Status          Status     `json:"status"`
	ReviewedBy      *string    `json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ToResponse converts an Event to its API shape
func (e *Event) ToResponse() EventResponse {
	var reviewedBy *string
	if e.ReviewedBy != nil {
		s := e.ReviewedBy.String()
		reviewedBy = &s
	}

	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		EventTime:       e.EventTime,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		EventTypeID:     e.EventTypeID,
		CategoryID:      e.CategoryID,
		OrganizerID:     e.OrganizerID.String(),
		Status:          e.Status,
		ReviewedBy:      reviewedBy,
		ReviewedAt:      e.ReviewedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
