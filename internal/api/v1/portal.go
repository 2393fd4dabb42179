package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/service"
)

type PortalHandler struct {
	portalService service.PortalService
	logger        *logger.Logger
}

func NewPortalHandler(portalService service.PortalService, logger *logger.Logger) *PortalHandler {
	return &PortalHandler{
		portalService: portalService,
		logger:        logger,
	}
}

// CreateSession issues a portal token for a member. Staff-only.
func (h *PortalHandler) CreateSession(c *gin.Context) {
	resp, err := h.portalService.CreateSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetOverview returns the signed-in member's account overview.
func (h *PortalHandler) GetOverview(c *gin.Context) {
	resp, err := h.portalService.GetOverview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPayments returns the signed-in member's payment history.
func (h *PortalHandler) GetPayments(c *gin.Context) {
	resp, err := h.portalService.GetPayments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlan returns the signed-in member's plan.
func (h *PortalHandler) GetPlan(c *gin.Context) {
	resp, err := h.portalService.GetPlan(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
