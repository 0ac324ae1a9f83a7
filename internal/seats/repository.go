package seats

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(seat *Seat) error
	GetByID(id uint) (*Seat, error)
	GetAll() ([]Seat, error)
	GetByScenery(sceneryID uint) ([]Seat, error)
	Update(seat *Seat) error
	Delete(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(seat *Seat) error {
	return r.db.Create(seat).Error
}

func (r *repository) GetByID(id uint) (*Seat, error) {
	var seat Seat
	err := r.db.Where("id = ?", id).First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetAll() ([]Seat, error) {
	var allSeats []Seat
	err := r.db.Order("id ASC").Find(&allSeats).Error
	return allSeats, err
}

func (r *repository) GetByScenery(sceneryID uint) ([]Seat, error) {
	var batch []Seat
	err := r.db.Where("scenery_id = ?", sceneryID).Order("id ASC").Find(&batch).Error
	return batch, err
}

func (r *repository) Update(seat *Seat) error {
	// Save writes every column, including HolderID back to NULL
	return r.db.Save(seat).Error
}

func (r *repository) Delete(id uint) error {
	return r.db.Delete(&Seat{}, id).Error
}
