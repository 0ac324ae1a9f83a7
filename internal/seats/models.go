package seats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SeatStatus is the occupancy state of a seat.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "Available"
	SeatStatusHeld      SeatStatus = "Held"
	SeatStatusOccupied  SeatStatus = "Occupied"
)

func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatStatusAvailable, SeatStatusHeld, SeatStatusOccupied:
		return true
	default:
		return false
	}
}

// Seat is an individually addressable inventory unit. Seats provisioned
// through the scenery path carry SceneryID plus a `{sceneryID}-{seq}` label;
// seats created through the generic endpoint may have no scenery linkage
// (SceneryID zero).
type Seat struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SceneryID  uint       `json:"scenery_id" gorm:"index"`
	SeatNumber string     `json:"seat_number" gorm:"not null;size:50;index"`
	Status     SeatStatus `json:"status" gorm:"type:varchar(20);not null;default:'Available'"`
	HolderID   *uuid.UUID `json:"holder_id" gorm:"type:uuid"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// FormatSeatNumber builds the display label for seat seq of a scenery.
// Sequences are 1-based and contiguous within a batch.
func FormatSeatNumber(sceneryID uint, seq int) string {
	return fmt.Sprintf("%d-%d", sceneryID, seq)
}

// ParseSeatNumber splits a seat label into its scenery id and sequence.
// The split happens on the first separator only, so label "12-3" always
// resolves to scenery 12, never to scenery 1.
func ParseSeatNumber(label string) (sceneryID uint, seq int, err error) {
	prefix, rest, found := strings.Cut(label, "-")
	if !found {
		return 0, 0, fmt.Errorf("seat number %q has no scenery prefix", label)
	}

	id, err := strconv.ParseUint(prefix, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("seat number %q has invalid scenery prefix: %w", label, err)
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("seat number %q has invalid sequence", label)
	}

	return uint(id), n, nil
}

type CreateSeatRequest struct {
	SeatNumber string `json:"seat_number" binding:"required,max=50"`
	Status     string `json:"status" binding:"required,oneof=Available Held Occupied"`
	HolderID   string `json:"holder_id" binding:"omitempty,uuid"`
}

type UpdateSeatRequest struct {
	SeatNumber *string `json:"seat_number" binding:"omitempty,max=50"`
	Status     *string `json:"status" binding:"omitempty,oneof=Available Held Occupied"`
	HolderID   *string `json:"holder_id" binding:"omitempty,uuid"`
}

type SeatResponse struct {
	ID         uint       `json:"id"`
	SceneryID  uint       `json:"scenery_id"`
	SeatNumber string     `json:"seat_number"`
	Status     SeatStatus `json:"status"`
	HolderID   *string    `json:"holder_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToResponse converts a Seat to its API shape
func (s *Seat) ToResponse() SeatResponse {
	var holder *string
	if s.HolderID != nil {
		h := s.HolderID.String()
		holder = &h
	}

	return SeatResponse{
		ID:         s.ID,
		SceneryID:  s.SceneryID,
		SeatNumber: s.SeatNumber,
		Status:     s.Status,
		HolderID:   holder,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
