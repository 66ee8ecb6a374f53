package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aozora-dev/blue_return_app/internal/apperrors"
	portssvc "github.com/aozora-dev/blue_return_app/internal/core/ports/services"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/aozora-dev/blue_return_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lossHandler handles HTTP requests related to the loss-carryforward register.
type lossHandler struct {
	lossService portssvc.LossSvc
}

func newLossHandler(ls portssvc.LossSvc) *lossHandler {
	return &lossHandler{lossService: ls}
}

// registerLossRoutes registers routes related to loss carryforwards.
func registerLossRoutes(rg *gin.RouterGroup, lossService portssvc.LossSvc) {
	h := newLossHandler(lossService)

	losses := rg.Group("/loss-carryforwards")
	{
		losses.POST("", h.createLossCarryforward)
		losses.GET("", h.listLossCarryforwards)
		losses.PUT("/:id/usage", h.recordLossUsage)
		losses.DELETE("/:id", h.deleteLossCarryforward)
	}
}

// createLossCarryforward godoc
// @Summary Record a prior-year loss
// @Description Adds a net loss to the carryforward register
// @Tags loss-carryforwards
// @Accept  json
// @Produce  json
// @Param   loss body dto.CreateLossCarryforwardRequest true "Loss details"
// @Success 201 {object} dto.LossCarryforwardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record loss"
// @Security BearerAuth
// @Router /loss-carryforwards [post]
func (h *lossHandler) createLossCarryforward(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLossCarryforwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLossCarryforward", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loss, err := h.lossService.CreateLossCarryforward(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create loss carryforward in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record loss"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLossCarryforwardResponse(loss))
}

// listLossCarryforwards godoc
// @Summary List loss carryforwards
// @Description Lists the loss register ordered by loss year
// @Tags loss-carryforwards
// @Produce  json
// @Success 200 {object} dto.ListLossCarryforwardsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list losses"
// @Security BearerAuth
// @Router /loss-carryforwards [get]
func (h *lossHandler) listLossCarryforwards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	losses, err := h.lossService.ListLossCarryforwards(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list loss carryforwards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list losses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLossCarryforwardsResponse(losses))
}

// recordLossUsage godoc
// @Summary Record accepted loss usage
// @Description Overwrites the three usage slots of a loss record after the operator accepts a proposed application
// @Tags loss-carryforwards
// @Accept  json
// @Produce  json
// @Param   id path string true "Loss ID"
// @Param   usage body dto.UpdateLossUsageRequest true "Usage slots"
// @Success 200 {object} dto.LossCarryforwardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Loss not found"
// @Failure 500 {object} map[string]string "Failed to record usage"
// @Security BearerAuth
// @Router /loss-carryforwards/{id}/usage [put]
func (h *lossHandler) recordLossUsage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lossID := c.Param("id")

	var req dto.UpdateLossUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordLossUsage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loss, err := h.lossService.RecordLossUsage(c.Request.Context(), lossID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loss not found"})
		} else {
			logger.Error("Failed to record loss usage in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record usage"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLossCarryforwardResponse(loss))
}

// deleteLossCarryforward godoc
// @Summary Delete a loss carryforward
// @Description Removes a loss record from the register
// @Tags loss-carryforwards
// @Produce  json
// @Param   id path string true "Loss ID"
// @Success 204 "Loss deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Loss not found"
// @Failure 500 {object} map[string]string "Failed to delete loss"
// @Security BearerAuth
// @Router /loss-carryforwards/{id} [delete]
func (h *lossHandler) deleteLossCarryforward(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lossID := c.Param("id")

	if err := h.lossService.DeleteLossCarryforward(c.Request.Context(), lossID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loss not found"})
		} else {
			logger.Error("Failed to delete loss carryforward in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete loss"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
