// file: internals/route/details/tenant_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	TenantRoute "hostelku_backend/internals/features/tenants/tenants/route"
)

func TenantPublicRoutes(r fiber.Router, db *gorm.DB) {
	TenantRoute.PublicTenantRoutes(r, db)
}

func TenantOwnerRoutes(r fiber.Router, db *gorm.DB) {
	TenantRoute.OwnerTenantRoutes(r, db)
}
