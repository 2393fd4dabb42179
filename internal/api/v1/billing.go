package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/service"
)

type BillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

func NewBillingHandler(billingService service.BillingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// RunCycle triggers a billing cycle on demand.
func (h *BillingHandler) RunCycle(c *gin.Context) {
	resp, err := h.billingService.RunCycle(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListNotifications evaluates the reminder rules against the current
// payment set.
func (h *BillingHandler) ListNotifications(c *gin.Context) {
	resp, err := h.billingService.GetReminders(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
