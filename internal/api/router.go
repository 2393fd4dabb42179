package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow/internal/api/cron"
	v1 "github.com/gymflow/gymflow/internal/api/v1"
	"github.com/gymflow/gymflow/internal/auth"
	"github.com/gymflow/gymflow/internal/config"
	"github.com/gymflow/gymflow/internal/logger"
	"github.com/gymflow/gymflow/internal/rest/middleware"
	"github.com/gymflow/gymflow/internal/types"
)

// Handlers bundles every HTTP handler wired into the router.
type Handlers struct {
	Auth      *v1.AuthHandler
	Member    *v1.MemberHandler
	Plan      *v1.PlanHandler
	Payment   *v1.PaymentHandler
	Expense   *v1.ExpenseHandler
	User      *v1.UserHandler
	Billing   *v1.BillingHandler
	Dashboard *v1.DashboardHandler
	AuditLog  *v1.AuditLogHandler
	Settings  *v1.SettingsHandler
	Portal    *v1.PortalHandler

	BillingCron *cron.BillingCronHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	log *logger.Logger,
	authService *auth.Service,
) *gin.Engine {
	if cfg.Deployment.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(log),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/v1")
	public.POST("/auth/login", handlers.Auth.Login)

	// Staff API. All roles can read; mutations on users are admin-only and
	// manual billing runs need admin or manager.
	private := router.Group("/v1")
	private.Use(middleware.AuthMiddleware(authService))
	{
		private.GET("/members", handlers.Member.ListMembers)
		private.POST("/members", handlers.Member.CreateMember)
		private.GET("/members/:id", handlers.Member.GetMember)
		private.PUT("/members/:id", handlers.Member.UpdateMember)
		private.DELETE("/members/:id", handlers.Member.DeleteMember)
		private.POST("/members/:id/portal-session", handlers.Portal.CreateSession)

		private.GET("/plans", handlers.Plan.ListPlans)
		private.POST("/plans", handlers.Plan.CreatePlan)
		private.GET("/plans/:id", handlers.Plan.GetPlan)
		private.PUT("/plans/:id", handlers.Plan.UpdatePlan)
		private.DELETE("/plans/:id", handlers.Plan.DeletePlan)

		private.GET("/payments", handlers.Payment.ListPayments)
		private.POST("/payments", handlers.Payment.RecordPayment)
		private.GET("/payments/:id", handlers.Payment.GetPayment)
		private.PUT("/payments/:id", handlers.Payment.UpdatePayment)
		private.POST("/payments/:id/confirm", handlers.Payment.ConfirmPayment)
		private.DELETE("/payments/:id", handlers.Payment.DeletePayment)

		private.GET("/expenses", handlers.Expense.ListExpenses)
		private.POST("/expenses", handlers.Expense.CreateExpense)
		private.GET("/expenses/:id", handlers.Expense.GetExpense)
		private.PUT("/expenses/:id", handlers.Expense.UpdateExpense)
		private.DELETE("/expenses/:id", handlers.Expense.DeleteExpense)

		private.GET("/dashboard", handlers.Dashboard.GetDashboard)
		private.GET("/notifications", handlers.Billing.ListNotifications)
		private.GET("/audit-logs", handlers.AuditLog.ListAuditLogs)

		private.GET("/settings", handlers.Settings.ListSettings)
		private.GET("/settings/:key", handlers.Settings.GetSetting)
		private.PUT("/settings/:key", handlers.Settings.UpdateSetting)

		runCycle := private.Group("/payments/run-cycle")
		runCycle.Use(middleware.RequireRoles(types.UserRoleAdmin, types.UserRoleManager))
		{
			runCycle.POST("", handlers.Billing.RunCycle)
		}

		users := private.Group("/users")
		users.Use(middleware.RequireRoles(types.UserRoleAdmin))
		{
			users.GET("", handlers.User.ListUsers)
			users.POST("", handlers.User.CreateUser)
			users.GET("/:id", handlers.User.GetUser)
			users.PUT("/:id", handlers.User.UpdateUser)
			users.DELETE("/:id", handlers.User.DeleteUser)
		}
	}

	// Member self-service portal.
	portal := router.Group("/v1/portal")
	portal.Use(middleware.PortalAuthMiddleware(authService))
	{
		portal.GET("/me", handlers.Portal.GetOverview)
		portal.GET("/payments", handlers.Portal.GetPayments)
		portal.GET("/plan", handlers.Portal.GetPlan)
	}

	// Cron endpoints for external schedulers.
	cronGroup := router.Group("/cron")
	cronGroup.Use(middleware.AuthMiddleware(authService),
		middleware.RequireRoles(types.UserRoleAdmin, types.UserRoleManager))
	{
		cronGroup.POST("/billing/run", handlers.BillingCron.RunBillingCycle)
	}

	return router
}
