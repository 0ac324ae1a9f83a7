package seats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stagepass/internal/shared/utils/response"
)

type Controller interface {
	ListSeats(c *gin.Context)
	GetSeat(c *gin.Context)
	CreateSeat(c *gin.Context)
	UpdateSeat(c *gin.Context)
	DeleteSeat(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func seatID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("seatId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}

func (ctrl *controller) ListSeats(c *gin.Context) {
	allSeats, err := ctrl.service.ListSeats()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seats retrieved successfully", allSeats, nil)
}

func (ctrl *controller) GetSeat(c *gin.Context) {
	id, ok := seatID(c)
	if !ok {
		return
	}

	seat, err := ctrl.service.GetSeatByID(id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrSeatNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat retrieved successfully", seat, nil)
}

func (ctrl *controller) CreateSeat(c *gin.Context) {
	var req CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.CreateSeat(req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrHolderNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seat created successfully", seat, nil)
}

func (ctrl *controller) UpdateSeat(c *gin.Context) {
	id, ok := seatID(c)
	if !ok {
		return
	}

	var req UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	seat, err := ctrl.service.UpdateSeat(id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSeatNotFound), errors.Is(err, ErrHolderNotFound):
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat updated successfully", seat, nil)
}

func (ctrl *controller) DeleteSeat(c *gin.Context) {
	id, ok := seatID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteSeat(id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrSeatNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat deleted successfully", nil, nil)
}
