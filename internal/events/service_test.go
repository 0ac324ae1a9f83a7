package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagepass/internal/shared/authz"
)

type fakeRepository struct {
	events map[uint]*Event
	nextID uint

	createErr error
	updateErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		events: make(map[uint]*Event),
		nextID: 1,
	}
}

func (f *fakeRepository) Create(event *Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = f.nextID
	f.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(id uint) (*Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeRepository) Update(id uint, updates map[string]interface{}) (*Event, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	event, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		switch column {
		case "name":
			event.Name = value.(string)
		case "start_date":
			event.StartDate = value.(time.Time)
		case "end_date":
			event.EndDate = value.(time.Time)
		case "event_time":
			event.EventTime = value.(string)
		case "location":
			event.Location = value.(string)
		case "max_participants":
			event.MaxParticipants = value.(int)
		case "event_type_id":
			event.EventTypeID = value.(uint)
		case "category_id":
			event.CategoryID = value.(uint)
		case "status":
			event.Status = value.(Status)
		case "reviewed_by":
			if value == nil {
				event.ReviewedBy = nil
			} else {
				id := value.(uuid.UUID)
				event.ReviewedBy = &id
			}
		case "reviewed_at":
			if value == nil {
				event.ReviewedAt = nil
			} else {
				at := value.(time.Time)
				event.ReviewedAt = &at
			}
		case "updated_at":
			event.UpdatedAt = value.(time.Time)
		}
	}

	copied := *event
	return &copied, nil
}

func (f *fakeRepository) GetByStatus(status Status) ([]Event, error) {
	var result []Event
	for id := uint(1); id < f.nextID; id++ {
		if event, ok := f.events[id]; ok && event.Status == status {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (f *fakeRepository) GetByOrganizer(organizerID uuid.UUID) ([]Event, error) {
	var result []Event
	for id := uint(1); id < f.nextID; id++ {
		if event, ok := f.events[id]; ok && event.OrganizerID == organizerID {
			result = append(result, *event)
		}
	}
	return result, nil
}

func (f *fakeRepository) Exists(id uint) (bool, error) {
	_, ok := f.events[id]
	return ok, nil
}

type recordingNotifier struct {
	eventIDs  []uint
	decisions []string
	err       error
}

func (n *recordingNotifier) NotifyEventDecision(ctx context.Context, eventID uint, eventName string, organizerID uuid.UUID, decision string) error {
	n.eventIDs = append(n.eventIDs, eventID)
	n.decisions = append(n.decisions, decision)
	return n.err
}

func sampleCreateRequest() CreateEventRequest {
	return CreateEventRequest{
		Name:            "Summer Jazz Night",
		StartDate:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		EventTime:       "19:30",
		Location:        "Riverside Amphitheatre",
		MaxParticipants: 200,
		EventTypeID:     1,
		CategoryID:      2,
	}
}

func sampleUpdateRequest() UpdateEventRequest {
	return UpdateEventRequest{
		Name:            "Summer Jazz Night (rescheduled)",
		StartDate:       time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		EventTime:       "20:00",
		Location:        "Grand Hall",
		MaxParticipants: 150,
		EventTypeID:     1,
		CategoryID:      2,
	}
}

func TestCreateEventStartsPending(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	organizerID := uuid.New()

	resp, err := svc.CreateEvent(organizerID, sampleCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	if resp.Status != StatusPending {
		t.Errorf("new event status = %s, want %s", resp.Status, StatusPending)
	}
	if resp.OrganizerID != organizerID.String() {
		t.Errorf("organizer = %s, want %s", resp.OrganizerID, organizerID)
	}
	if resp.ReviewedBy != nil || resp.ReviewedAt != nil {
		t.Errorf("new event carries review metadata: reviewed_by=%v reviewed_at=%v", resp.ReviewedBy, resp.ReviewedAt)
	}
}

func TestGetEventByIDNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.GetEventByID(42)
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("GetEventByID error = %v, want ErrEventNotFound", err)
	}
}

func TestUpdateEventResetsReviewState(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	organizerID := uuid.New()
	reviewerID := uuid.New()

	created, err := svc.CreateEvent(organizerID, sampleCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	if _, err := svc.Approve(created.ID, reviewerID); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	updated, err := svc.UpdateEvent(created.ID, organizerID, sampleUpdateRequest())
	if err != nil {
		t.Fatalf("UpdateEvent returned error: %v", err)
	}

	if updated.Status != StatusPending {
		t.Errorf("status after edit = %s, want %s", updated.Status, StatusPending)
	}
	if updated.ReviewedBy != nil {
		t.Errorf("reviewed_by after edit = %v, want nil", *updated.ReviewedBy)
	}
	if updated.ReviewedAt != nil {
		t.Errorf("reviewed_at after edit = %v, want nil", *updated.ReviewedAt)
	}
	if updated.Name != "Summer Jazz Night (rescheduled)" {
		t.Errorf("name not overwritten, got %q", updated.Name)
	}
}

func TestUpdateEventRejectsNonOwner(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	organizerID := uuid.New()

	created, err := svc.CreateEvent(organizerID, sampleCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	_, err = svc.UpdateEvent(created.ID, uuid.New(), sampleUpdateRequest())
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("UpdateEvent by stranger error = %v, want ErrForbidden", err)
	}

	// State must be untouched
	stored, _ := repo.GetByID(created.ID)
	if stored.Name != "Summer Jazz Night" {
		t.Errorf("event mutated by rejected edit: name = %q", stored.Name)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.UpdateEvent(7, uuid.New(), sampleUpdateRequest())
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("UpdateEvent error = %v, want ErrEventNotFound", err)
	}
}

func TestDecisionsRecordReviewer(t *testing.T) {
	tests := []struct {
		name       string
		decide     func(Service, uint, uuid.UUID) (*EventResponse, error)
		wantStatus Status
	}{
		{"approve", Service.Approve, StatusApproved},
		{"disapprove", Service.Disapprove, StatusDisapproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := NewService(repo)
			reviewerID := uuid.New()

			created, err := svc.CreateEvent(uuid.New(), sampleCreateRequest())
			if err != nil {
				t.Fatalf("CreateEvent returned error: %v", err)
			}

			resp, err := tt.decide(svc, created.ID, reviewerID)
			if err != nil {
				t.Fatalf("decision returned error: %v", err)
			}

			if resp.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", resp.Status, tt.wantStatus)
			}
			if resp.ReviewedBy == nil || *resp.ReviewedBy != reviewerID.String() {
				t.Errorf("reviewed_by = %v, want %s", resp.ReviewedBy, reviewerID)
			}
			if resp.ReviewedAt == nil {
				t.Error("reviewed_at not set by decision")
			}
		})
	}
}

func TestDecideMissingEvent(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.Approve(99, uuid.New()); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Approve error = %v, want ErrEventNotFound", err)
	}
	if _, err := svc.Disapprove(99, uuid.New()); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Disapprove error = %v, want ErrEventNotFound", err)
	}
}

func TestDecisionNotifiesOrganizer(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)

	created, err := svc.CreateEvent(uuid.New(), sampleCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	if _, err := svc.Approve(created.ID, uuid.New()); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	if len(notifier.eventIDs) != 1 || notifier.eventIDs[0] != created.ID {
		t.Fatalf("notifier called with events %v, want [%d]", notifier.eventIDs, created.ID)
	}
	if notifier.decisions[0] != string(StatusApproved) {
		t.Errorf("notified decision = %s, want %s", notifier.decisions[0], StatusApproved)
	}
}

func TestDecisionSurvivesNotifierFailure(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	svc.SetNotifier(&recordingNotifier{err: errors.New("broker unavailable")})

	created, err := svc.CreateEvent(uuid.New(), sampleCreateRequest())
	if err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	resp, err := svc.Disapprove(created.ID, uuid.New())
	if err != nil {
		t.Fatalf("Disapprove returned error despite it only notifying best-effort: %v", err)
	}
	if resp.Status != StatusDisapproved {
		t.Errorf("status = %s, want %s", resp.Status, StatusDisapproved)
	}
}

func TestListPendingReturnsOnlyPending(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	first, _ := svc.CreateEvent(uuid.New(), sampleCreateRequest())
	second, _ := svc.CreateEvent(uuid.New(), sampleCreateRequest())
	third, _ := svc.CreateEvent(uuid.New(), sampleCreateRequest())

	if _, err := svc.Approve(second.ID, uuid.New()); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	pending, err := svc.ListPending()
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}

	if len(pending) != 2 {
		t.Fatalf("ListPending returned %d events, want 2", len(pending))
	}
	if pending[0].ID != first.ID || pending[1].ID != third.ID {
		t.Errorf("pending ids = [%d %d], want [%d %d]", pending[0].ID, pending[1].ID, first.ID, third.ID)
	}

	// Listing is a read, a second call returns the same set
	again, err := svc.ListPending()
	if err != nil {
		t.Fatalf("second ListPending returned error: %v", err)
	}
	if len(again) != 2 {
		t.Errorf("second ListPending returned %d events, want 2", len(again))
	}
}

func TestListByOrganizer(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	mine := uuid.New()
	other := uuid.New()

	svc.CreateEvent(mine, sampleCreateRequest())
	svc.CreateEvent(other, sampleCreateRequest())
	svc.CreateEvent(mine, sampleCreateRequest())

	events, err := svc.ListByOrganizer(mine)
	if err != nil {
		t.Fatalf("ListByOrganizer returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("ListByOrganizer returned %d events, want 2", len(events))
	}
	for _, event := range events {
		if event.OrganizerID != mine.String() {
			t.Errorf("event %d belongs to %s, want %s", event.ID, event.OrganizerID, mine)
		}
	}
}

func TestEventExists(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, _ := svc.CreateEvent(uuid.New(), sampleCreateRequest())

	exists, err := svc.EventExists(created.ID)
	if err != nil || !exists {
		t.Errorf("EventExists(%d) = (%v, %v), want (true, nil)", created.ID, exists, err)
	}

	exists, err = svc.EventExists(999)
	if err != nil || exists {
		t.Errorf("EventExists(999) = (%v, %v), want (false, nil)", exists, err)
	}
}
