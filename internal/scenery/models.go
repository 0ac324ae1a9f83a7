package scenery

import (
	"time"

	"stagepass/internal/seats"
)

// Shape classifies a seating layout.
type Shape string

const (
	ShapeRound      Shape = "Round"
	ShapeSquare     Shape = "Square"
	ShapeTriangular Shape = "Triangular"
)

func (s Shape) IsValid() bool {
	switch s {
	case ShapeRound, ShapeSquare, ShapeTriangular:
		return true
	default:
		return false
	}
}

// ValidShapes lists the accepted shape values, for error messages.
func ValidShapes() []Shape {
	return []Shape{ShapeRound, ShapeSquare, ShapeTriangular}
}

// Scenery is a seating layout tied to one event. SeatCount is fixed at
// creation time; the seat batch is provisioned together with the scenery
// and destroyed with it.
type Scenery struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SeatCount int       `json:"seat_count" gorm:"not null;check:seat_count > 0"`
	Shape     Shape     `json:"shape" gorm:"type:varchar(20);not null"`
	EventID   uint      `json:"event_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Seats []seats.Seat `json:"seats" gorm:"foreignKey:SceneryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Scenery) TableName() string {
	return "sceneries"
}

type CreateSceneryRequest struct {
	SeatCount int    `json:"seat_count" binding:"required,min=1,max=10000"`
	Shape     string `json:"shape" binding:"required"`
	EventID   uint   `json:"event_id" binding:"required"`
}

// UpdateSceneryRequest uses pointers so the service can tell "field absent"
// from "field set". A present seat_count is rejected outright.
type UpdateSceneryRequest struct {
	SeatCount *int    `json:"seat_count"`
	Shape     *string `json:"shape"`
	EventID   *uint   `json:"event_id"`
}

type SceneryResponse struct {
	ID        uint                  `json:"id"`
	SeatCount int                   `json:"seat_count"`
	Shape     Shape                 `json:"shape"`
	EventID   uint                  `json:"event_id"`
	Seats     []seats.SeatResponse  `json:"seats"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ToResponse converts a Scenery with its seat batch to the API shape
func (s *Scenery) ToResponse() SceneryResponse {
	seatResponses := make([]seats.SeatResponse, len(s.Seats))
	for i := range s.Seats {
		seatResponses[i] = s.Seats[i].ToResponse()
	}

	return SceneryResponse{
		ID:        s.ID,
		SeatCount: s.SeatCount,
		Shape:     s.Shape,
		EventID:   s.EventID,
		Seats:     seatResponses,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
