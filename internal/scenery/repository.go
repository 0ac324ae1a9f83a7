package scenery

import (
	"stagepass/internal/seats"

	"gorm.io/gorm"
)

type Repository interface {
	// CreateWithSeats persists the scenery and its full seat batch in one
	// transaction; a failed seat insert rolls the scenery back too.
	CreateWithSeats(s *Scenery) error
	GetByID(id uint) (*Scenery, error)
	GetAll() ([]Scenery, error)
	Update(id uint, updates map[string]interface{}) (*Scenery, error)
	// DeleteWithSeats removes the seat batch before the scenery row, in one
	// transaction.
	DeleteWithSeats(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithSeats(s *Scenery) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		// Scenery ID is assigned by the insert above, so the batch labels
		// can be built now: {sceneryID}-1 .. {sceneryID}-N, contiguous.
		batch := make([]seats.Seat, s.SeatCount)
		for i := range batch {
			batch[i] = seats.Seat{
				SceneryID:  s.ID,
				SeatNumber: seats.FormatSeatNumber(s.ID, i+1),
				Status:     seats.SeatStatusAvailable,
			}
		}

		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		s.Seats = batch
		return nil
	})
}

func (r *repository) GetByID(id uint) (*Scenery, error) {
	var s Scenery
	err := r.db.Preload("Seats").Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetAll() ([]Scenery, error) {
	var sceneries []Scenery
	err := r.db.Preload("Seats").Order("id ASC").Find(&sceneries).Error
	return sceneries, err
}

func (r *repository) Update(id uint, updates map[string]interface{}) (*Scenery, error) {
	var s Scenery

	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&s).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.Preload("Seats").Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) DeleteWithSeats(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Seats go first so a failure never leaves orphaned seat rows
		if err := tx.Where("scenery_id = ?", id).Delete(&seats.Seat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Scenery{}, id).Error
	})
}
