package scenery

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"stagepass/internal/seats"
)

type fakeRepository struct {
	sceneries map[uint]*Scenery
	nextID    uint

	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		sceneries: make(map[uint]*Scenery),
		nextID:    1,
	}
}

func (f *fakeRepository) CreateWithSeats(s *Scenery) error {
	if f.createErr != nil {
		// Nothing is persisted when the transaction rolls back
		return f.createErr
	}

	s.ID = f.nextID
	f.nextID++
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	batch := make([]seats.Seat, s.SeatCount)
	for i := range batch {
		batch[i] = seats.Seat{
			ID:         uint(i + 1),
			SceneryID:  s.ID,
			SeatNumber: seats.FormatSeatNumber(s.ID, i+1),
			Status:     seats.SeatStatusAvailable,
		}
	}
	s.Seats = batch

	copied := *s
	f.sceneries[s.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(id uint) (*Scenery, error) {
	s, ok := f.sceneries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepository) GetAll() ([]Scenery, error) {
	var result []Scenery
	for id := uint(1); id < f.nextID; id++ {
		if s, ok := f.sceneries[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (f *fakeRepository) Update(id uint, updates map[string]interface{}) (*Scenery, error) {
	s, ok := f.sceneries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		switch column {
		case "shape":
			s.Shape = value.(Shape)
		case "event_id":
			s.EventID = value.(uint)
		case "updated_at":
			s.UpdatedAt = value.(time.Time)
		}
	}

	copied := *s
	return &copied, nil
}

func (f *fakeRepository) DeleteWithSeats(id uint) error {
	if _, ok := f.sceneries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.sceneries, id)
	return nil
}

type fakeEventService struct {
	existing map[uint]bool
	err      error
}

func (f *fakeEventService) EventExists(id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[id], nil
}

func newServiceWithEvents(repo Repository, eventIDs ...uint) Service {
	existing := make(map[uint]bool)
	for _, id := range eventIDs {
		existing[id] = true
	}

	svc := NewService(repo)
	svc.SetEventService(&fakeEventService{existing: existing})
	return svc
}

func TestCreateSceneryProvisionsSeatBatch(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1)

	resp, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 5,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	if len(resp.Seats) != 5 {
		t.Fatalf("created %d seats, want 5", len(resp.Seats))
	}

	for i, seat := range resp.Seats {
		wantNumber := fmt.Sprintf("%d-%d", resp.ID, i+1)
		if seat.SeatNumber != wantNumber {
			t.Errorf("seat %d number = %q, want %q", i, seat.SeatNumber, wantNumber)
		}
		if seat.Status != seats.SeatStatusAvailable {
			t.Errorf("seat %q status = %s, want %s", seat.SeatNumber, seat.Status, seats.SeatStatusAvailable)
		}
		if seat.HolderID != nil {
			t.Errorf("seat %q has holder %v, want none", seat.SeatNumber, seat.HolderID)
		}
	}
}

func TestCreateSceneryInvalidShape(t *testing.T) {
	svc := newServiceWithEvents(newFakeRepository(), 1)

	_, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 3,
		Shape:     "Hexagonal",
		EventID:   1,
	})
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("CreateScenery error = %v, want ErrInvalidShape", err)
	}
}

func TestCreateSceneryUnknownEvent(t *testing.T) {
	svc := newServiceWithEvents(newFakeRepository(), 1)

	_, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 3,
		Shape:     string(ShapeSquare),
		EventID:   42,
	})
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("CreateScenery error = %v, want ErrEventNotFound", err)
	}
}

func TestCreateSceneryRollsBackOnRepositoryFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.createErr = errors.New("seat batch insert failed")
	svc := newServiceWithEvents(repo, 1)

	_, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 10,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err == nil {
		t.Fatal("CreateScenery succeeded, want error")
	}

	all, _ := repo.GetAll()
	if len(all) != 0 {
		t.Errorf("repository holds %d sceneries after failed create, want 0", len(all))
	}
}

func TestSeatNumbersKeepSceneryPrefixDistinct(t *testing.T) {
	repo := newFakeRepository()
	// Push the counter to double digits so prefixes 1 and 12 coexist
	repo.nextID = 12
	svc := newServiceWithEvents(repo, 1)

	resp, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 3,
		Shape:     string(ShapeTriangular),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	for _, seat := range resp.Seats {
		sceneryID, _, err := seats.ParseSeatNumber(seat.SeatNumber)
		if err != nil {
			t.Fatalf("ParseSeatNumber(%q) returned error: %v", seat.SeatNumber, err)
		}
		if sceneryID != 12 {
			t.Errorf("seat %q parsed to scenery %d, want 12", seat.SeatNumber, sceneryID)
		}
	}
}

func TestUpdateSceneryRejectsSeatCountChange(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1)

	created, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 4,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	newCount := 8
	_, err = svc.UpdateScenery(created.ID, UpdateSceneryRequest{SeatCount: &newCount})
	if !errors.Is(err, ErrSeatCountImmutable) {
		t.Fatalf("UpdateScenery error = %v, want ErrSeatCountImmutable", err)
	}

	// The row and its batch are untouched
	stored, _ := repo.GetByID(created.ID)
	if stored.SeatCount != 4 {
		t.Errorf("seat count mutated to %d, want 4", stored.SeatCount)
	}
	if len(stored.Seats) != 4 {
		t.Errorf("seat batch mutated to %d seats, want 4", len(stored.Seats))
	}
}

func TestUpdateSceneryShapeAndEvent(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1, 2)

	created, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 4,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	newShape := string(ShapeSquare)
	newEvent := uint(2)
	updated, err := svc.UpdateScenery(created.ID, UpdateSceneryRequest{
		Shape:   &newShape,
		EventID: &newEvent,
	})
	if err != nil {
		t.Fatalf("UpdateScenery returned error: %v", err)
	}

	if updated.Shape != ShapeSquare {
		t.Errorf("shape = %s, want %s", updated.Shape, ShapeSquare)
	}
	if updated.EventID != 2 {
		t.Errorf("event id = %d, want 2", updated.EventID)
	}
	if updated.SeatCount != 4 {
		t.Errorf("seat count = %d, want 4 (unchanged)", updated.SeatCount)
	}
}

func TestUpdateSceneryInvalidTargets(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1)

	created, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 2,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	badShape := "Oval"
	if _, err := svc.UpdateScenery(created.ID, UpdateSceneryRequest{Shape: &badShape}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("update with bad shape error = %v, want ErrInvalidShape", err)
	}

	missingEvent := uint(77)
	if _, err := svc.UpdateScenery(created.ID, UpdateSceneryRequest{EventID: &missingEvent}); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("update with missing event error = %v, want ErrEventNotFound", err)
	}

	if _, err := svc.UpdateScenery(99, UpdateSceneryRequest{}); !errors.Is(err, ErrSceneryNotFound) {
		t.Errorf("update of missing scenery error = %v, want ErrSceneryNotFound", err)
	}
}

func TestDeleteSceneryCascades(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1)

	created, err := svc.CreateScenery(CreateSceneryRequest{
		SeatCount: 3,
		Shape:     string(ShapeRound),
		EventID:   1,
	})
	if err != nil {
		t.Fatalf("CreateScenery returned error: %v", err)
	}

	if err := svc.DeleteScenery(created.ID); err != nil {
		t.Fatalf("DeleteScenery returned error: %v", err)
	}

	if _, err := svc.GetSceneryByID(created.ID); !errors.Is(err, ErrSceneryNotFound) {
		t.Errorf("GetSceneryByID after delete error = %v, want ErrSceneryNotFound", err)
	}

	if err := svc.DeleteScenery(created.ID); !errors.Is(err, ErrSceneryNotFound) {
		t.Errorf("second delete error = %v, want ErrSceneryNotFound", err)
	}
}

func TestGetAllSceneries(t *testing.T) {
	repo := newFakeRepository()
	svc := newServiceWithEvents(repo, 1)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateScenery(CreateSceneryRequest{
			SeatCount: i + 1,
			Shape:     string(ShapeRound),
			EventID:   1,
		}); err != nil {
			t.Fatalf("CreateScenery returned error: %v", err)
		}
	}

	all, err := svc.GetAllSceneries()
	if err != nil {
		t.Fatalf("GetAllSceneries returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetAllSceneries returned %d sceneries, want 3", len(all))
	}
	for i, s := range all {
		if len(s.Seats) != i+1 {
			t.Errorf("scenery %d has %d seats, want %d", s.ID, len(s.Seats), i+1)
		}
	}
}
