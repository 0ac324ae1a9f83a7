package scenery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagepass/internal/shared/constants"
	"stagepass/pkg/cache"
	"stagepass/pkg/logger"

	"gorm.io/gorm"
)

var (
	ErrSceneryNotFound    = errors.New("scenery not found")
	ErrEventNotFound      = errors.New("referenced event not found")
	ErrInvalidShape       = errors.New("invalid shape")
	ErrSeatCountImmutable = errors.New("the number of seats cannot be changed")
)

// EventService validates event references. Implemented by the events service;
// declared here to avoid a package cycle.
type EventService interface {
	EventExists(id uint) (bool, error)
}

type Service interface {
	SetEventService(eventService EventService)
	SetCacheService(cacheService cache.Service)

	CreateScenery(req CreateSceneryRequest) (*SceneryResponse, error)
	GetAllSceneries() ([]SceneryResponse, error)
	GetSceneryByID(id uint) (*SceneryResponse, error)
	UpdateScenery(id uint, req UpdateSceneryRequest) (*SceneryResponse, error)
	DeleteScenery(id uint) error
}

type service struct {
	repo         Repository
	eventService EventService
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetEventService(eventService EventService) {
	s.eventService = eventService
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) invalidateSceneryCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_SCENERY_ALL); err != nil {
		logger.GetDefault().Warn("failed to invalidate scenery cache", "error", err)
	}
}

// validateShape checks the shape against the closed enumeration.
func validateShape(raw string) (Shape, error) {
	shape := Shape(raw)
	if !shape.IsValid() {
		return "", fmt.Errorf("%w: %q (valid shapes: %v)", ErrInvalidShape, raw, ValidShapes())
	}
	return shape, nil
}

// validateEvent checks that the referenced event exists.
func (s *service) validateEvent(eventID uint) error {
	if s.eventService == nil {
		return errors.New("event service not available")
	}

	exists, err := s.eventService.EventExists(eventID)
	if err != nil {
		return fmt.Errorf("failed to check event reference: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", ErrEventNotFound, eventID)
	}
	return nil
}

// CreateScenery provisions a layout and its whole seat batch atomically:
// either the scenery plus all SeatCount seats exist afterwards, or nothing
// does.
func (s *service) CreateScenery(req CreateSceneryRequest) (*SceneryResponse, error) {
	shape, err := validateShape(req.Shape)
	if err != nil {
		return nil, err
	}

	if err := s.validateEvent(req.EventID); err != nil {
		return nil, err
	}

	newScenery := &Scenery{
		SeatCount: req.SeatCount,
		Shape:     shape,
		EventID:   req.EventID,
	}

	if err := s.repo.CreateWithSeats(newScenery); err != nil {
		return nil, fmt.Errorf("failed to create scenery with seats: %w", err)
	}

	ctx := context.Background()
	s.invalidateSceneryCache(ctx)
	logger.GetDefault().LogSceneryProvisioned(ctx, fmt.Sprintf("%d", newScenery.ID), newScenery.SeatCount)

	response := newScenery.ToResponse()
	return &response, nil
}

func (s *service) GetAllSceneries() ([]SceneryResponse, error) {
	ctx := context.Background()

	var cached []SceneryResponse
	if s.cacheService != nil {
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_SCENERY_LIST, &cached); err == nil {
			return cached, nil
		}
	}

	sceneries, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sceneries: %w", err)
	}

	responses := make([]SceneryResponse, len(sceneries))
	for i := range sceneries {
		responses[i] = sceneries[i].ToResponse()
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, constants.CACHE_KEY_SCENERY_LIST, responses, constants.TTL_SCENERY_LIST); err != nil {
			logger.GetDefault().Warn("failed to cache scenery list", "error", err)
		}
	}

	return responses, nil
}

func (s *service) GetSceneryByID(id uint) (*SceneryResponse, error) {
	found, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSceneryNotFound
		}
		return nil, fmt.Errorf("failed to get scenery: %w", err)
	}

	response := found.ToResponse()
	return &response, nil
}

// UpdateScenery changes shape and/or event reference. Seat count is fixed at
// creation time; any attempt to change it is rejected before touching the row.
func (s *service) UpdateScenery(id uint, req UpdateSceneryRequest) (*SceneryResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSceneryNotFound
		}
		return nil, fmt.Errorf("failed to get scenery: %w", err)
	}

	if req.SeatCount != nil {
		return nil, ErrSeatCountImmutable
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.Shape != nil {
		shape, err := validateShape(*req.Shape)
		if err != nil {
			return nil, err
		}
		updates["shape"] = shape
	}

	if req.EventID != nil {
		if err := s.validateEvent(*req.EventID); err != nil {
			return nil, err
		}
		updates["event_id"] = *req.EventID
	}

	updated, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update scenery: %w", err)
	}

	s.invalidateSceneryCache(context.Background())

	response := updated.ToResponse()
	return &response, nil
}

// DeleteScenery cascades: the seat batch is removed together with the layout.
func (s *service) DeleteScenery(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSceneryNotFound
		}
		return fmt.Errorf("failed to get scenery: %w", err)
	}

	if err := s.repo.DeleteWithSeats(id); err != nil {
		return fmt.Errorf("failed to delete scenery: %w", err)
	}

	s.invalidateSceneryCache(context.Background())
	return nil
}
