package controllers_fx

import (
	"go.uber.org/fx"

	"familybudget/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFamilyController),
	fx.Provide(controllers.NewTransactionController),
	fx.Provide(controllers.NewSavingsController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewDashboardController))
