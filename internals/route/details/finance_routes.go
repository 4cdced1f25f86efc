// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/finance/rent_payments/gateway"
	RentPaymentRoute "hostelku_backend/internals/features/finance/rent_payments/route"
)

// FinancePublicRoutes: gateway callbacks, no bearer token
func FinancePublicRoutes(r fiber.Router, db *gorm.DB, gw gateway.Gateway) {
	RentPaymentRoute.WebhookRoutes(r, db, gw)
}

func FinanceOwnerRoutes(r fiber.Router, db *gorm.DB, gw gateway.Gateway) {
	RentPaymentRoute.OwnerRentPaymentRoutes(r, db, gw)
}
