package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSeatNotFound   = errors.New("seat not found")
	ErrHolderNotFound = errors.New("holder user not found")
)

// UserService verifies holder references against the user store. Implemented
// by an adapter over the auth repository to avoid a package cycle.
type UserService interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service interface {
	SetUserService(userService UserService)

	ListSeats() ([]SeatResponse, error)
	GetSeatByID(id uint) (*SeatResponse, error)
	CreateSeat(req CreateSeatRequest) (*SeatResponse, error)
	UpdateSeat(id uint, req UpdateSeatRequest) (*SeatResponse, error)
	DeleteSeat(id uint) error
}

type service struct {
	repo        Repository
	userService UserService
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetUserService(userService UserService) {
	s.userService = userService
}

// checkHolder verifies the holder user exists when a holder reference is set.
func (s *service) checkHolder(holderID uuid.UUID) error {
	if s.userService == nil {
		return nil
	}

	exists, err := s.userService.UserExists(context.Background(), holderID)
	if err != nil {
		return fmt.Errorf("failed to check holder user: %w", err)
	}
	if !exists {
		return ErrHolderNotFound
	}
	return nil
}

func (s *service) ListSeats() ([]SeatResponse, error) {
	allSeats, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	responses := make([]SeatResponse, len(allSeats))
	for i, seat := range allSeats {
		responses[i] = seat.ToResponse()
	}
	return responses, nil
}

func (s *service) GetSeatByID(id uint) (*SeatResponse, error) {
	seat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	response := seat.ToResponse()
	return &response, nil
}

// CreateSeat is the generic inventory path. It does not enforce the
// scenery-linkage invariant; batch provisioning goes through the scenery
// service instead.
func (s *service) CreateSeat(req CreateSeatRequest) (*SeatResponse, error) {
	seat := &Seat{
		SeatNumber: req.SeatNumber,
		Status:     SeatStatus(req.Status),
	}

	// Carry the scenery linkage when the label happens to follow the
	// batch format; free-form labels stay unlinked.
	if sceneryID, _, err := ParseSeatNumber(req.SeatNumber); err == nil {
		seat.SceneryID = sceneryID
	}

	if req.HolderID != "" {
		holderID, err := uuid.Parse(req.HolderID)
		if err != nil {
			return nil, fmt.Errorf("invalid holder id: %w", err)
		}
		if err := s.checkHolder(holderID); err != nil {
			return nil, err
		}
		seat.HolderID = &holderID
	}

	if err := s.repo.Create(seat); err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", err)
	}

	response := seat.ToResponse()
	return &response, nil
}

func (s *service) UpdateSeat(id uint, req UpdateSeatRequest) (*SeatResponse, error) {
	seat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	if req.SeatNumber != nil {
		seat.SeatNumber = *req.SeatNumber
	}
	if req.Status != nil {
		seat.Status = SeatStatus(*req.Status)
	}
	if req.HolderID != nil {
		if *req.HolderID == "" {
			seat.HolderID = nil
		} else {
			holderID, err := uuid.Parse(*req.HolderID)
			if err != nil {
				return nil, fmt.Errorf("invalid holder id: %w", err)
			}
			if err := s.checkHolder(holderID); err != nil {
				return nil, err
			}
			seat.HolderID = &holderID
		}
	}

	if err := s.repo.Update(seat); err != nil {
		return nil, fmt.Errorf("failed to update seat: %w", err)
	}

	response := seat.ToResponse()
	return &response, nil
}

func (s *service) DeleteSeat(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeatNotFound
		}
		return fmt.Errorf("failed to get seat: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete seat: %w", err)
	}
	return nil
}
