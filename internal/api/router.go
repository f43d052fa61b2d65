package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familybudget/internal/api/controllers"
	"familybudget/internal/repositories"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/middleware"
	"familybudget/pkg/utils"
)

type RouterParams struct {
	fx.In

	Logger  *zap.Logger
	Tokens  *utils.TokenIssuer
	Revoked mem.RevokedTokenStore
	Users   repositories.UserRepository

	Account      *controllers.AccountController
	Family       *controllers.FamilyController
	Transaction  *controllers.TransactionController
	Savings      *controllers.SavingsController
	Payment      *controllers.PaymentController
	Notification *controllers.NotificationController
	Dashboard    *controllers.DashboardController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(p.Logger))
	r.Use(middleware.ZapRecovery(p.Logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	apiGroup := r.Group("/api")
	apiGroup.POST("/register", p.Account.Register)
	apiGroup.POST("/login", p.Account.Login)
	apiGroup.POST("/forgot-password", p.Account.ForgotPassword)
	apiGroup.POST("/reset-password", p.Account.ResetPassword)

	auth := apiGroup.Group("")
	auth.Use(middleware.JWTAuthMiddleware(p.Tokens, p.Revoked, p.Users))
	parent := middleware.ParentOnly()

	auth.POST("/logout", p.Account.Logout)
	auth.GET("/user", p.Account.CurrentUser)
	auth.PUT("/user", p.Account.UpdateProfile)
	auth.POST("/user/password", p.Account.ChangePassword)

	family := auth.Group("/family")
	family.GET("", p.Family.GetFamily)
	family.GET("/members", p.Family.ListUsers)
	family.POST("/member", parent, p.Family.AddUser)
	family.GET("/relatives", p.Family.ListRelatives)
	family.POST("/relatives", parent, p.Family.AddRelative)
	family.PUT("/relatives/:id", parent, p.Family.UpdateRelative)
	family.DELETE("/relatives/:id", parent, p.Family.DeleteRelative)

	txns := auth.Group("/transactions")
	txns.GET("", p.Transaction.ListFamily)
	txns.GET("/mine", p.Transaction.ListMine)
	txns.POST("", p.Transaction.Create)
	txns.PUT("/:id", p.Transaction.Update)
	txns.DELETE("/:id", p.Transaction.Delete)

	goals := auth.Group("/savings-goals")
	goals.GET("", p.Savings.ListGoals)
	goals.POST("", parent, p.Savings.CreateGoal)
	goals.PUT("/:id", parent, p.Savings.UpdateGoal)
	goals.DELETE("/:id", parent, p.Savings.DeleteGoal)
	goals.GET("/:id/history", p.Savings.History)
	goals.POST("/:id/deposit", p.Savings.Deposit)
	goals.POST("/:id/withdraw", parent, p.Savings.Withdraw)

	payments := auth.Group("/payments")
	payments.GET("", p.Payment.List)
	payments.POST("", parent, p.Payment.Create)
	payments.PUT("/:id", parent, p.Payment.Update)
	payments.DELETE("/:id", parent, p.Payment.Delete)

	notifications := auth.Group("/notifications")
	notifications.GET("", p.Notification.List)
	notifications.GET("/unread", p.Notification.ListUnread)
	notifications.POST("/:id/read", p.Notification.MarkRead)
	notifications.POST("/:id/unread", p.Notification.MarkUnread)
	notifications.DELETE("/:id", p.Notification.Delete)

	auth.GET("/budget-summary", p.Dashboard.BudgetSummary)
	auth.GET("/spending-categories", p.Dashboard.SpendingCategories)
	auth.POST("/budget-planning", parent, p.Dashboard.PlanBudget)
}
