// file: internals/features/finance/rent_payments/route/rent_payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rpController "hostelku_backend/internals/features/finance/rent_payments/controller"
	"hostelku_backend/internals/features/finance/rent_payments/gateway"
)

// OwnerRentPaymentRoutes: behind AuthJWT
func OwnerRentPaymentRoutes(r fiber.Router, db *gorm.DB, gw gateway.Gateway) {
	ctl := rpController.NewRentPaymentController(db, gw)

	rp := r.Group("/rent-payments")
	{
		rp.Post("/refresh", ctl.Refresh)
		rp.Get("/", ctl.List)
		rp.Post("/", ctl.CreateAdditional)
		rp.Get("/:id", ctl.Get)
		rp.Put("/:id/edit", ctl.Edit)
		rp.Delete("/:id/remove", ctl.Cancel)
		rp.Post("/:id/checkout", ctl.Checkout)
	}
}

// WebhookRoutes: public, authenticated by the notification signature
func WebhookRoutes(r fiber.Router, db *gorm.DB, gw gateway.Gateway) {
	ctl := rpController.NewRentPaymentController(db, gw)
	r.Post("/webhooks/midtrans", ctl.MidtransWebhook)
}
