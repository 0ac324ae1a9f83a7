package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stagepass/internal/shared/authz"
	"stagepass/internal/shared/constants"
	"stagepass/pkg/cache"
	"stagepass/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetNotifier(notifier DecisionNotifier)

	CreateEvent(organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(id uint) (*EventResponse, error)
	UpdateEvent(id uint, actorID uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	ListPending() ([]EventResponse, error)
	Approve(id uint, reviewerID uuid.UUID) (*EventResponse, error)
	Disapprove(id uint, reviewerID uuid.UUID) (*EventResponse, error)
	ListByOrganizer(organizerID uuid.UUID) ([]EventResponse, error)

	// EventExists is consumed by the scenery service to validate event
	// references without a package cycle.
	EventExists(id uint) (bool, error)
}

// DecisionNotifier publishes review decisions to the notification pipeline.
// Failures are logged, never propagated.
type DecisionNotifier interface {
	NotifyEventDecision(ctx context.Context, eventID uint, eventName string, organizerID uuid.UUID, decision string) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	notifier     DecisionNotifier
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetNotifier(notifier DecisionNotifier) {
	s.notifier = notifier
}

func (s *service) setCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.cacheService == nil {
		return nil
	}
	return s.cacheService.Set(ctx, key, value, ttl)
}

func (s *service) getCache(ctx context.Context, key string, dest interface{}) error {
	if s.cacheService == nil {
		return cache.ErrCacheMiss
	}
	return s.cacheService.Get(ctx, key, dest)
}

func (s *service) invalidateEventCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_EVENT_ALL); err != nil {
		logger.GetDefault().Warn("failed to invalidate event cache", "error", err)
	}
}

func (s *service) CreateEvent(organizerID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	event := &Event{
		Name:            req.Name,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		EventTime:       req.EventTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		EventTypeID:     req.EventTypeID,
		CategoryID:      req.CategoryID,
		OrganizerID:     organizerID,
		Status:          StatusPending,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidateEventCache(context.Background())

	response := event.ToResponse()
	return &response, nil
}

func (s *service) GetEventByID(id uint) (*EventResponse, error) {
	ctx := context.Background()
	cacheKey := constants.BuildEventDetailKey(fmt.Sprintf("%d", id))

	var cachedEvent EventResponse
	if err := s.getCache(ctx, cacheKey, &cachedEvent); err == nil {
		return &cachedEvent, nil
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	response := event.ToResponse()

	if err := s.setCache(ctx, cacheKey, response, constants.TTL_EVENT_DETAIL); err != nil {
		logger.GetDefault().Warn("failed to cache event detail", "error", err)
	}

	return &response, nil
}

// UpdateEvent overwrites every editable field and drops the event back to
// Pending, discarding any prior review decision. Only the owning organizer
// may edit.
func (s *service) UpdateEvent(id uint, actorID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	currentEvent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if err := authz.RequireOwner(actorID, currentEvent.OrganizerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":             req.Name,
		"start_date":       req.StartDate,
		"end_date":         req.EndDate,
		"event_time":       req.EventTime,
		"location":         req.Location,
		"max_participants": req.MaxParticipants,
		"event_type_id":    req.EventTypeID,
		"category_id":      req.CategoryID,
		"status":           StatusPending,
		"reviewed_by":      nil,
		"reviewed_at":      nil,
		"updated_at":       time.Now(),
	}

	updatedEvent, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.invalidateEventCache(context.Background())

	response := updatedEvent.ToResponse()
	return &response, nil
}

func (s *service) ListPending() ([]EventResponse, error) {
	eventList, err := s.repo.GetByStatus(StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending events: %w", err)
	}

	responses := make([]EventResponse, len(eventList))
	for i, event := range eventList {
		responses[i] = event.ToResponse()
	}
	return responses, nil
}

func (s *service) Approve(id uint, reviewerID uuid.UUID) (*EventResponse, error) {
	return s.decide(id, reviewerID, StatusApproved)
}

func (s *service) Disapprove(id uint, reviewerID uuid.UUID) (*EventResponse, error) {
	return s.decide(id, reviewerID, StatusDisapproved)
}

// decide records a reviewer's ruling: the new status plus reviewer identity
// and decision timestamp.
func (s *service) decide(id uint, reviewerID uuid.UUID, status Status) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
		"updated_at":  now,
	}

	updatedEvent, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	ctx := context.Background()
	s.invalidateEventCache(ctx)
	logger.GetDefault().LogEventDecision(ctx, fmt.Sprintf("%d", id), reviewerID.String(), string(status))

	if s.notifier != nil {
		if err := s.notifier.NotifyEventDecision(ctx, event.ID, event.Name, event.OrganizerID, string(status)); err != nil {
			logger.GetDefault().Warn("failed to publish decision notification", "error", err)
		}
	}

	response := updatedEvent.ToResponse()
	return &response, nil
}

func (s *service) ListByOrganizer(organizerID uuid.UUID) ([]EventResponse, error) {
	eventList, err := s.repo.GetByOrganizer(organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizer events: %w", err)
	}

	responses := make([]EventResponse, len(eventList))
	for i, event := range eventList {
		responses[i] = event.ToResponse()
	}
	return responses, nil
}

func (s *service) EventExists(id uint) (bool, error) {
	return s.repo.Exists(id)
}
