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

// rentHandler handles HTTP requests related to the rent-expense breakdown.
type rentHandler struct {
	rentService portssvc.RentSvc
}

func newRentHandler(rs portssvc.RentSvc) *rentHandler {
	return &rentHandler{rentService: rs}
}

// registerRentRoutes registers routes related to rent details.
func registerRentRoutes(rg *gin.RouterGroup, rentService portssvc.RentSvc) {
	h := newRentHandler(rentService)

	rents := rg.Group("/rent-details")
	{
		rents.POST("", h.createRentDetail)
		rents.GET("", h.listRentDetails)
		rents.DELETE("/:id", h.deleteRentDetail)
	}
}

// createRentDetail godoc
// @Summary Add a rent-expense line
// @Description Adds a payee line to the rent-expense breakdown
// @Tags rent-details
// @Accept  json
// @Produce  json
// @Param   rent body dto.CreateRentDetailRequest true "Rent detail"
// @Success 201 {object} dto.RentDetailResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add rent detail"
// @Security BearerAuth
// @Router /rent-details [post]
func (h *rentHandler) createRentDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRentDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRentDetail", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rent, err := h.rentService.CreateRentDetail(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rent detail in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add rent detail"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRentDetailResponse(rent))
}

// listRentDetails godoc
// @Summary List rent-expense lines
// @Description Lists the rent-expense breakdown
// @Tags rent-details
// @Produce  json
// @Success 200 {object} dto.ListRentDetailsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rent details"
// @Security BearerAuth
// @Router /rent-details [get]
func (h *rentHandler) listRentDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rents, err := h.rentService.ListRentDetails(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rent details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rent details"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRentDetailsResponse(rents))
}

// deleteRentDetail godoc
// @Summary Delete a rent-expense line
// @Description Removes a payee line from the breakdown
// @Tags rent-details
// @Produce  json
// @Param   id path string true "Rent detail ID"
// @Success 204 "Rent detail deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rent detail not found"
// @Failure 500 {object} map[string]string "Failed to delete rent detail"
// @Security BearerAuth
// @Router /rent-details/{id} [delete]
func (h *rentHandler) deleteRentDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentID := c.Param("id")

	if err := h.rentService.DeleteRentDetail(c.Request.Context(), rentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rent detail not found"})
		} else {
			logger.Error("Failed to delete rent detail in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rent detail"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
