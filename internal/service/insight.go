package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/api/dto"
)

const (
	insightCacheKey = "dashboard_insight"
	insightCacheTTL = 15 * time.Minute
)

// TextInsightProvider produces a short natural-language summary of the
// gym's current financial posture. Implementations may call out to an
// external model; the default provider is rule-based.
type TextInsightProvider interface {
	GenerateInsight(ctx context.Context, stats dto.MemberStats, payments dto.PaymentStats) (string, error)
}

// InsightService wraps a provider with a short-lived cache so the
// dashboard does not regenerate the summary on every load.
type InsightService interface {
	GetInsight(ctx context.Context, stats dto.MemberStats, payments dto.PaymentStats) (string, error)
}

type insightService struct {
	ServiceParams
	provider TextInsightProvider
	cache    *gocache.Cache
}

func NewInsightService(params ServiceParams, provider TextInsightProvider) InsightService {
	if provider == nil {
		provider = &ruleBasedInsightProvider{}
	}
	return &insightService{
		ServiceParams: params,
		provider:      provider,
		cache:         gocache.New(insightCacheTTL, 2*insightCacheTTL),
	}
}

func (s *insightService) GetInsight(ctx context.Context, stats dto.MemberStats, payments dto.PaymentStats) (string, error) {
	if cached, ok := s.cache.Get(insightCacheKey); ok {
		return cached.(string), nil
	}

	insight, err := s.provider.GenerateInsight(ctx, stats, payments)
	if err != nil {
		s.Logger.Warnw("insight generation failed", "error", err)
		return "", nil
	}

	s.cache.Set(insightCacheKey, insight, gocache.DefaultExpiration)
	return insight, nil
}

// ruleBasedInsightProvider composes the summary from the stats it is
// given. It stands in for an external text model and honors context
// cancellation like a remote call would.
type ruleBasedInsightProvider struct{}

func (p *ruleBasedInsightProvider) GenerateInsight(ctx context.Context, stats dto.MemberStats, payments dto.PaymentStats) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if stats.Total == 0 {
		return "No members enrolled yet. Add plans and members to start billing.", nil
	}

	msg := fmt.Sprintf("You have %d active member(s) out of %d.", stats.Active, stats.Total)
	if payments.OverdueCount > 0 {
		msg += fmt.Sprintf(" %d payment(s) totaling %s are overdue; consider following up.",
			payments.OverdueCount, payments.OverdueAmount.StringFixed(2))
	} else if payments.PendingCount > 0 {
		msg += fmt.Sprintf(" %d payment(s) are pending collection.", payments.PendingCount)
	} else {
		msg += " All payments are up to date."
	}
	if payments.CollectedMonth.GreaterThan(decimal.Zero) {
		msg += fmt.Sprintf(" Collected %s so far this month.", payments.CollectedMonth.StringFixed(2))
	}
	return msg, nil
}
