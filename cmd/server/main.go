package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/gymflow/gymflow/internal/api"
	apicron "github.com/gymflow/gymflow/internal/api/cron"
	v1 "github.com/gymflow/gymflow/internal/api/v1"
	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/config"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/repository/memory"
	"github.com/gymflow/gymflow/internal/seed"
	"github.com/gymflow/gymflow/internal/service"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			auth.NewService,

			memory.NewMemberRepository,
			memory.NewPlanRepository,
			memory.NewPaymentRepository,
			memory.NewExpenseRepository,
			memory.NewUserRepository,
			memory.NewAuditLogRepository,
			memory.NewSettingsRepository,

			newServiceParams,

			service.NewAuthService,
			service.NewMemberService,
			service.NewPlanService,
			service.NewPaymentService,
			service.NewExpenseService,
			service.NewUserService,
			service.NewBillingService,
			service.NewSettingsService,
			service.NewAuditLogService,
			service.NewPortalService,
			newInsightService,
			service.NewDashboardService,

			v1.NewAuthHandler,
			v1.NewMemberHandler,
			v1.NewPlanHandler,
			v1.NewPaymentHandler,
			v1.NewExpenseHandler,
			v1.NewUserHandler,
			v1.NewBillingHandler,
			v1.NewDashboardHandler,
			v1.NewAuditLogHandler,
			v1.NewSettingsHandler,
			v1.NewPortalHandler,
			apicron.NewBillingCronHandler,

			newHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			seedData,
			startBillingScheduler,
			startServer,
		),
	)

	app.Run()
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	authService *auth.Service,
	memberRepo *memory.MemberRepository,
	planRepo *memory.PlanRepository,
	paymentRepo *memory.PaymentRepository,
	expenseRepo *memory.ExpenseRepository,
	userRepo *memory.UserRepository,
	auditLogRepo *memory.AuditLogRepository,
	settingsRepo *memory.SettingsRepository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Auth:         authService,
		MemberRepo:   memberRepo,
		PlanRepo:     planRepo,
		PaymentRepo:  paymentRepo,
		ExpenseRepo:  expenseRepo,
		UserRepo:     userRepo,
		AuditLogRepo: auditLogRepo,
		SettingsRepo: settingsRepo,
	}
}

func newInsightService(params service.ServiceParams) service.InsightService {
	return service.NewInsightService(params, nil)
}

func newHandlers(
	authHandler *v1.AuthHandler,
	memberHandler *v1.MemberHandler,
	planHandler *v1.PlanHandler,
	paymentHandler *v1.PaymentHandler,
	expenseHandler *v1.ExpenseHandler,
	userHandler *v1.UserHandler,
	billingHandler *v1.BillingHandler,
	dashboardHandler *v1.DashboardHandler,
	auditLogHandler *v1.AuditLogHandler,
	settingsHandler *v1.SettingsHandler,
	portalHandler *v1.PortalHandler,
	billingCronHandler *apicron.BillingCronHandler,
) api.Handlers {
	return api.Handlers{
		Auth:        authHandler,
		Member:      memberHandler,
		Plan:        planHandler,
		Payment:     paymentHandler,
		Expense:     expenseHandler,
		User:        userHandler,
		Billing:     billingHandler,
		Dashboard:   dashboardHandler,
		AuditLog:    auditLogHandler,
		Settings:    settingsHandler,
		Portal:      portalHandler,
		BillingCron: billingCronHandler,
	}
}

func seedData(cfg *config.Configuration, params service.ServiceParams, log *logger.Logger) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	if err := seed.Run(context.Background(), params); err != nil {
		log.Errorw("failed to seed demo data", "error", err)
		return err
	}
	return nil
}

// startBillingScheduler runs the billing cycle on the configured cron
// schedule, plus once at startup when configured. Reminders are evaluated
// after each run so their log trail lines up with the cycle.
func startBillingScheduler(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	billingService service.BillingService,
	log *logger.Logger,
) error {
	runCycle := func() {
		ctx := context.Background()
		if _, err := billingService.RunCycle(ctx); err != nil {
			log.Errorw("scheduled billing cycle failed", "error", err)
			return
		}
		reminders, err := billingService.GetReminders(ctx)
		if err != nil {
			log.Errorw("reminder evaluation failed", "error", err)
			return
		}
		for _, n := range reminders.Items {
			log.Infow("billing reminder", "title", n.Title, "message", n.Message, "payment_id", n.PaymentID)
		}
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Billing.CronSchedule, runCycle); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Billing.RunOnStartup {
				go runCycle()
			}
			scheduler.Start()
			log.Infow("billing scheduler started", "schedule", cfg.Billing.CronSchedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "address", cfg.Server.Address)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("failed to start HTTP server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
