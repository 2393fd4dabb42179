package seed

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/gymflow/gymflow/internal/domain/expense"
	"github.com/gymflow/gymflow/internal/domain/member"
	"github.com/gymflow/gymflow/internal/domain/payment"
	"github.com/gymflow/gymflow/internal/domain/plan"
	"github.com/gymflow/gymflow/internal/domain/settings"
	"github.com/gymflow/gymflow/internal/domain/user"
	"github.com/gymflow/gymflow/internal/service"
	"github.com/gymflow/gymflow/internal/types"
)

// Run populates empty repositories with a small demo dataset: plans,
// members with staggered join dates, their payment history, a few
// expenses, staff accounts, and the default settings. Running against a
// non-empty store is a no-op.
func Run(ctx context.Context, params service.ServiceParams) error {
	existing, err := params.PlanRepo.List(ctx, plan.NewNoLimitFilter())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		params.Logger.Debugw("seed skipped, store is not empty")
		return nil
	}

	now := params.NowUTC()

	plans, err := seedPlans(ctx, params)
	if err != nil {
		return err
	}
	members, err := seedMembers(ctx, params, plans, now)
	if err != nil {
		return err
	}
	if err := seedPayments(ctx, params, members, plans, now); err != nil {
		return err
	}
	if err := seedExpenses(ctx, params, now); err != nil {
		return err
	}
	if err := seedUsers(ctx, params); err != nil {
		return err
	}
	if err := seedSettings(ctx, params); err != nil {
		return err
	}

	params.Logger.Infow("seed data loaded",
		"plans", len(plans),
		"members", len(members),
	)
	return nil
}

func seedPlans(ctx context.Context, params service.ServiceParams) ([]*plan.Plan, error) {
	plans := []*plan.Plan{
		{
			ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:             "Basic",
			Description:      "Gym floor access during staffed hours",
			Price:            decimal.NewFromInt(30),
			DurationInMonths: 1,
			BaseModel:        types.GetDefaultBaseModel(ctx),
		},
		{
			ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:              "Premium",
			Description:       "Full access including classes, billed on the 1st",
			Price:             decimal.NewFromInt(55),
			DurationInMonths:  1,
			DueDateDayOfMonth: lo.ToPtr(1),
			BaseModel:         types.GetDefaultBaseModel(ctx),
		},
		{
			ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
			Name:             "Quarterly",
			Description:      "Full access, billed every three months",
			Price:            decimal.NewFromInt(150),
			DurationInMonths: 3,
			BaseModel:        types.GetDefaultBaseModel(ctx),
		},
	}
	for _, pl := range plans {
		if err := params.PlanRepo.Create(ctx, pl); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func seedMembers(ctx context.Context, params service.ServiceParams, plans []*plan.Plan, now time.Time) ([]*member.Member, error) {
	type spec struct {
		name   string
		email  string
		phone  string
		plan   int
		status types.MemberStatus
		joined int // months ago
	}
	specs := []spec{
		{"Alice Morgan", "alice.morgan@example.com", "+1 555 0101", 0, types.MemberStatusActive, 5},
		{"Ben Carter", "ben.carter@example.com", "+1 555 0102", 1, types.MemberStatusActive, 4},
		{"Carla Diaz", "carla.diaz@example.com", "+1 555 0103", 1, types.MemberStatusActive, 3},
		{"Dmitri Volkov", "dmitri.volkov@example.com", "+1 555 0104", 2, types.MemberStatusActive, 6},
		{"Elena Rossi", "elena.rossi@example.com", "+1 555 0105", 0, types.MemberStatusActive, 2},
		{"Farid Khan", "farid.khan@example.com", "+1 555 0106", 0, types.MemberStatusInactive, 8},
		{"Grace Liu", "grace.liu@example.com", "+1 555 0107", 1, types.MemberStatusPending, 0},
		{"Hugo Santos", "hugo.santos@example.com", "+1 555 0108", 2, types.MemberStatusActive, 1},
	}

	members := make([]*member.Member, 0, len(specs))
	for _, sp := range specs {
		m := &member.Member{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MEMBER),
			Name:         sp.name,
			Email:        sp.email,
			Phone:        sp.phone,
			JoinDate:     now.AddDate(0, -sp.joined, 0),
			PlanID:       plans[sp.plan].ID,
			MemberStatus: sp.status,
			BaseModel:    types.GetDefaultBaseModel(ctx),
		}
		if err := params.MemberRepo.Create(ctx, m); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// seedPayments backfills a paid history for the older members so the
// first billing cycle run only generates the current cycle.
func seedPayments(ctx context.Context, params service.ServiceParams, members []*member.Member, plans []*plan.Plan, now time.Time) error {
	plansByID := lo.KeyBy(plans, func(p *plan.Plan) string { return p.ID })

	for _, m := range members {
		if m.MemberStatus != types.MemberStatusActive {
			continue
		}
		pl := plansByID[m.PlanID]

		due := m.JoinDate
		for due.Before(now.AddDate(0, -pl.DurationInMonths, 0)) {
			paid := due.AddDate(0, 0, 1)
			p := &payment.Payment{
				ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
				MemberID:      m.ID,
				PlanID:        pl.ID,
				Description:   "Membership fee " + due.Format("Jan 2006"),
				Amount:        pl.Price,
				DueDate:       due,
				PaidDate:      &paid,
				PaymentStatus: types.PaymentStatusPaid,
				BaseModel:     types.GetDefaultBaseModel(ctx),
			}
			if err := params.PaymentRepo.Create(ctx, p); err != nil {
				return err
			}
			due = due.AddDate(0, pl.DurationInMonths, 0)
		}
	}
	return nil
}

func seedExpenses(ctx context.Context, params service.ServiceParams, now time.Time) error {
	expenses := []*expense.Expense{
		{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
			Description: "Monthly rent",
			Category:    types.ExpenseCategoryRent,
			Amount:      decimal.NewFromInt(1200),
			Date:        now.AddDate(0, 0, -now.Day()+1),
			BaseModel:   types.GetDefaultBaseModel(ctx),
		},
		{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
			Description: "Treadmill belt replacement",
			Category:    types.ExpenseCategoryMaintenance,
			Amount:      decimal.NewFromInt(180),
			Date:        now.AddDate(0, 0, -10),
			BaseModel:   types.GetDefaultBaseModel(ctx),
		},
		{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
			Description: "Electricity bill",
			Category:    types.ExpenseCategoryUtilities,
			Amount:      decimal.NewFromInt(240),
			Date:        now.AddDate(0, -1, 0),
			BaseModel:   types.GetDefaultBaseModel(ctx),
		},
	}
	for _, e := range expenses {
		if err := params.ExpenseRepo.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(ctx context.Context, params service.ServiceParams) error {
	type spec struct {
		name     string
		email    string
		password string
		role     types.UserRole
	}
	specs := []spec{
		{"Admin", "admin@gymflow.local", "admin12345", types.UserRoleAdmin},
		{"Manager", "manager@gymflow.local", "manager12345", types.UserRoleManager},
		{"Front Desk", "staff@gymflow.local", "staff12345", types.UserRoleStaff},
	}

	for _, sp := range specs {
		hash, err := params.Auth.HashPassword(sp.password)
		if err != nil {
			return err
		}
		u := &user.User{
			ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
			Name:         sp.name,
			Email:        sp.email,
			PasswordHash: hash,
			Role:         sp.role,
			BaseModel:    types.GetDefaultBaseModel(ctx),
		}
		if err := params.UserRepo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(ctx context.Context, params service.ServiceParams) error {
	defaults := map[types.SettingKey]types.SettingConfig{
		types.SettingKeyBillingReminderConfig: types.DefaultReminderConfig(),
		types.SettingKeyGymProfile:            types.DefaultGymProfileConfig(),
	}

	for key, cfg := range defaults {
		value, err := types.EncodeSettingValue(cfg)
		if err != nil {
			return err
		}
		st := &settings.Setting{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING),
			Key:       key,
			Value:     value,
			BaseModel: types.GetDefaultBaseModel(ctx),
		}
		if err := params.SettingsRepo.Create(ctx, st); err != nil {
			return err
		}
	}
	return nil
}
