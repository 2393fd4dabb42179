package cron

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/service"
)

// BillingCronHandler exposes the billing cycle as a cron-triggered
// endpoint, in addition to the in-process scheduler.
type BillingCronHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

func NewBillingCronHandler(
	billingService service.BillingService,
	logger *logger.Logger,
) *BillingCronHandler {
	return &BillingCronHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// RunBillingCycle runs status reconciliation and recurring charge
// generation across all members.
func (h *BillingCronHandler) RunBillingCycle(c *gin.Context) {
	h.logger.Infow("starting billing cycle cron job", "time", time.Now().UTC().Format(time.RFC3339))

	resp, err := h.billingService.RunCycle(c.Request.Context())
	if err != nil {
		h.logger.Errorw("billing cycle cron job failed", "error", err)
		c.Error(err)
		return
	}

	h.logger.Infow("completed billing cycle cron job",
		"updated_count", resp.UpdatedCount,
		"generated_count", resp.GeneratedCount,
	)
	c.JSON(http.StatusOK, resp)
}
