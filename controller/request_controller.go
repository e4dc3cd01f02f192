package controller

import (
	"context"
	"elevatorops-console/middelware"
	"elevatorops-console/models"
	"elevatorops-console/services"
	"elevatorops-console/utils/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TransitionRequest is the body of POST /requests/:id/transition
type TransitionRequest struct {
	Status models.RequestStatus `json:"status" validate:"required,oneof=PENDING ASSIGNED ON_WAY IN_PROGRESS COMPLETED CANCELLED"`
}

// AssignRequest is the body of POST /requests/:id/assign
type AssignRequest struct {
	TechnicianID models.ID `json:"technicianId" validate:"required"`
}

type RequestController struct {
	ctx              context.Context
	requestService   services.RequestServiceInterface
	lifecycleService services.RequestLifecycleServiceInterface
	logger           logger.Logger
	validator        *validator.Validate
}

func NewRequestController(ctx context.Context, requestService services.RequestServiceInterface, lifecycleService services.RequestLifecycleServiceInterface, logger logger.Logger) *RequestController {
	return &RequestController{
		ctx:              ctx,
		requestService:   requestService,
		lifecycleService: lifecycleService,
		logger:           logger,
		validator:        validator.New(),
	}
}

// GetRequest handles GET /requests/:id
func (h *RequestController) GetRequest(c *gin.Context) {
	req, err := h.requestService.GetRequest(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondError(c, "Failed to retrieve request", err)
		return
	}
	respondOK(c, http.StatusOK, "Request retrieved successfully", gin.H{
		"request":     req,
		"transitions": h.lifecycleService.AllowedTransitions(req.Status),
		"assignable":  req.Status == models.RequestStatusPending,
	})
}

// CreateRequest handles POST /requests
func (h *RequestController) CreateRequest(c *gin.Context) {
	var req models.CreateRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return
	}

	created, err := h.requestService.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorf("Failed to create request: %v", err)
		respondError(c, "Failed to create request", err)
		return
	}
	respondOK(c, http.StatusCreated, "Request created successfully", created)
}

// UpdateRequest handles PATCH /requests/:id
func (h *RequestController) UpdateRequest(c *gin.Context) {
	var req models.UpdateRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return
	}

	updated, err := h.requestService.UpdateRequest(c.Request.Context(), models.ID(c.Param("id")), &req)
	if err != nil {
		h.logger.Errorf("Failed to update request %s: %v", c.Param("id"), err)
		respondError(c, "Failed to update request", err)
		return
	}
	respondOK(c, http.StatusOK, "Request updated successfully", updated)
}

// DeleteRequest handles DELETE /requests/:id
func (h *RequestController) DeleteRequest(c *gin.Context) {
	if err := h.requestService.DeleteRequest(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		h.logger.Errorf("Failed to delete request %s: %v", c.Param("id"), err)
		respondError(c, "Failed to delete request", err)
		return
	}
	respondOK(c, http.StatusOK, "Request deleted successfully", nil)
}

// TransitionRequest handles POST /requests/:id/transition
func (h *RequestController) TransitionRequest(c *gin.Context) {
	var req TransitionRequest
	if !h.bind(c, &req) {
		return
	}
	actor, _ := middelware.ActorFromContext(c)

	updated, err := h.lifecycleService.Transition(c.Request.Context(), models.ID(c.Param("id")), req.Status, actor)
	if err != nil {
		h.logger.Warnf("Transition of request %s to %s failed: %v", c.Param("id"), req.Status, err)
		respondError(c, "Status change rejected", err)
		return
	}
	respondOK(c, http.StatusOK, "Request status updated", updated)
}

// AssignRequest handles POST /requests/:id/assign
func (h *RequestController) AssignRequest(c *gin.Context) {
	var req AssignRequest
	if !h.bind(c, &req) {
		return
	}
	actor, _ := middelware.ActorFromContext(c)

	updated, err := h.lifecycleService.Assign(c.Request.Context(), models.ID(c.Param("id")), req.TechnicianID, actor)
	if err != nil {
		h.logger.Warnf("Assignment of request %s failed: %v", c.Param("id"), err)
		respondError(c, "Assignment rejected", err)
		return
	}
	respondOK(c, http.StatusOK, "Technician assigned", updated)
}

// bind decodes and validates a small command body
func (h *RequestController) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("Validation failed:", err)
		c.JSON(http.StatusBadRequest, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Error: &models.APIError{
				Type:    "ValidationError",
				Details: services.FormatValidationErrors(err),
			},
		})
		return false
	}
	return true
}
