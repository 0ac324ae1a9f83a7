package scenery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stagepass/internal/shared/utils/response"
)

type Controller interface {
	GetAllSceneries(c *gin.Context)
	GetScenery(c *gin.Context)
	CreateScenery(c *gin.Context)
	UpdateScenery(c *gin.Context)
	DeleteScenery(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func sceneryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("sceneryId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid scenery ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}

// sceneryStatusCode maps service errors to the HTTP contract
func sceneryStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrSceneryNotFound), errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidShape), errors.Is(err, ErrSeatCountImmutable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (ctrl *controller) GetAllSceneries(c *gin.Context) {
	sceneries, err := ctrl.service.GetAllSceneries()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sceneries retrieved successfully", sceneries, nil)
}

func (ctrl *controller) GetScenery(c *gin.Context) {
	id, ok := sceneryID(c)
	if !ok {
		return
	}

	found, err := ctrl.service.GetSceneryByID(id)
	if err != nil {
		response.RespondJSON(c, "error", sceneryStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Scenery retrieved successfully", found, nil)
}

func (ctrl *controller) CreateScenery(c *gin.Context) {
	var req CreateSceneryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	created, err := ctrl.service.CreateScenery(req)
	if err != nil {
		response.RespondJSON(c, "error", sceneryStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Scenery and seats created successfully", created, nil)
}

func (ctrl *controller) UpdateScenery(c *gin.Context) {
	id, ok := sceneryID(c)
	if !ok {
		return
	}

	var req UpdateSceneryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	updated, err := ctrl.service.UpdateScenery(id, req)
	if err != nil {
		response.RespondJSON(c, "error", sceneryStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Scenery updated successfully", updated, nil)
}

func (ctrl *controller) DeleteScenery(c *gin.Context) {
	id, ok := sceneryID(c)
	if !ok {
		return
	}

	if err := ctrl.service.DeleteScenery(id); err != nil {
		response.RespondJSON(c, "error", sceneryStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Scenery and seats removed successfully", nil, nil)
}
