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

// fixedAssetHandler handles HTTP requests related to the fixed-asset register.
type fixedAssetHandler struct {
	assetService portssvc.FixedAssetSvc
}

func newFixedAssetHandler(fs portssvc.FixedAssetSvc) *fixedAssetHandler {
	return &fixedAssetHandler{assetService: fs}
}

// registerFixedAssetRoutes registers routes related to fixed assets.
func registerFixedAssetRoutes(rg *gin.RouterGroup, assetService portssvc.FixedAssetSvc) {
	h := newFixedAssetHandler(assetService)

	assets := rg.Group("/fixed-assets")
	{
		assets.POST("", h.createFixedAsset)
		assets.GET("", h.listFixedAssets)
		assets.DELETE("/:id", h.deleteFixedAsset)
	}
}

// createFixedAsset godoc
// @Summary Register a fixed asset
// @Description Adds an asset to the fixed-asset register
// @Tags fixed-assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateFixedAssetRequest true "Asset details"
// @Success 201 {object} dto.FixedAssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to register asset"
// @Security BearerAuth
// @Router /fixed-assets [post]
func (h *fixedAssetHandler) createFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFixedAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateFixedAsset(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fixed asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFixedAssetResponse(asset))
}

// listFixedAssets godoc
// @Summary List fixed assets
// @Description Lists the fixed-asset register ordered by acquisition date
// @Tags fixed-assets
// @Produce  json
// @Success 200 {object} dto.ListFixedAssetsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /fixed-assets [get]
func (h *fixedAssetHandler) listFixedAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.assetService.ListFixedAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list fixed assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedAssetsResponse(assets))
}

// deleteFixedAsset godoc
// @Summary Delete a fixed asset
// @Description Removes an asset from the register
// @Tags fixed-assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 204 "Asset deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Security BearerAuth
// @Router /fixed-assets/{id} [delete]
func (h *fixedAssetHandler) deleteFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	if err := h.assetService.DeleteFixedAsset(c.Request.Context(), assetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to delete fixed asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
