package testutil

import (
	"github.com/gymflow/gymflow/internal/repository/memory"
)

// Stores bundles fresh in-memory repositories for a test.
type Stores struct {
	MemberRepo   *memory.MemberRepository
	PlanRepo     *memory.PlanRepository
	PaymentRepo  *memory.PaymentRepository
	ExpenseRepo  *memory.ExpenseRepository
	UserRepo     *memory.UserRepository
	AuditLogRepo *memory.AuditLogRepository
	SettingsRepo *memory.SettingsRepository
}

func NewStores() Stores {
	return Stores{
		MemberRepo:   memory.NewMemberRepository(),
		PlanRepo:     memory.NewPlanRepository(),
		PaymentRepo:  memory.NewPaymentRepository(),
		ExpenseRepo:  memory.NewExpenseRepository(),
		UserRepo:     memory.NewUserRepository(),
		AuditLogRepo: memory.NewAuditLogRepository(),
		SettingsRepo: memory.NewSettingsRepository(),
	}
}

// Clear wipes all stores between tests.
func (s Stores) Clear() {
	s.MemberRepo.Clear()
	s.PlanRepo.Clear()
	s.PaymentRepo.Clear()
	s.ExpenseRepo.Clear()
	s.UserRepo.Clear()
	s.AuditLogRepo.Clear()
	s.SettingsRepo.Clear()
}
