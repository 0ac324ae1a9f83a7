package events

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(event *Event) error
	GetByID(id uint) (*Event, error)
	Update(id uint, updates map[string]interface{}) (*Event, error)
	GetByStatus(status Status) ([]Event, error)
	GetByOrganizer(organizerID uuid.UUID) ([]Event, error)
	Exists(id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) GetByID(id uint) (*Event, error) {
	var event Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) Update(id uint, updates map[string]interface{}) (*Event, error) {
	var event Event

	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Re-read so cleared (NULL) columns come back as nil
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *repository) GetByStatus(status Status) ([]Event, error) {
	var events []Event
	err := r.db.Where("status = ?", status).Order("id ASC").Find(&events).Error
	return events, err
}

func (r *repository) GetByOrganizer(organizerID uuid.UUID) ([]Event, error) {
	var events []Event
	err := r.db.Where("organizer_id = ?", organizerID).Order("id ASC").Find(&events).Error
	return events, err
}

func (r *repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&Event{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
