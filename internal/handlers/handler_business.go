package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/muhamadbasim/Lokanant/internal/core/ports/services"
	"github.com/muhamadbasim/Lokanant/internal/dto"
	"github.com/muhamadbasim/Lokanant/internal/middleware"
)

// businessHandler handles HTTP requests for the UMKM registry.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// registerBusinessRoutes registers the registry and everything nested under a business.
func registerBusinessRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &businessHandler{businessService: services.Business}

	businesses := rg.Group("/businesses")
	{
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:business_id", h.getBusiness)
	}

	business := businesses.Group("/:business_id")
	registerTransactionRoutes(business, services.Transaction)
	registerBusinessLoanRoutes(business, services.Loan)
}

// listBusinesses godoc
// @Summary List businesses
// @Description Lists registered UMKM with their credit status and recommendations.
// @Tags businesses
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BusinessResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list businesses"
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBusinessesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListBusinesses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	businesses, err := h.businessService.ListBusinesses(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Business not found", "Failed to list businesses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBusinessResponse(businesses))
}

// getBusiness godoc
// @Summary Get a business
// @Description Retrieves an UMKM profile with score factors, credit status and recommendations.
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} map[string]string "Business not found"
// @Failure 500 {object} map[string]string "Failed to retrieve business"
// @Router /businesses/{business_id} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("business_id")

	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondError(c, logger.With(slog.String("business_id", businessID)), err, "Business not found", "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}
