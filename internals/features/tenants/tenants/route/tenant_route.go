// file: internals/features/tenants/tenants/route/tenant_route.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	tenantController "hostelku_backend/internals/features/tenants/tenants/controller"
	"hostelku_backend/internals/middlewares"
)

// OwnerTenantRoutes: behind AuthJWT
func OwnerTenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tenantController.NewTenantController(db)

	r.Get("/blocks/:blockId/tenants", ctl.List)
	r.Post("/blocks/:blockId/tenants", ctl.Create)

	g := r.Group("/tenants")
	{
		g.Get("/:id", ctl.Get)
		g.Patch("/:id", ctl.Update)
		g.Patch("/:id/status", ctl.UpdateStatus)
		g.Delete("/:id", ctl.Delete)
	}
}

// PublicTenantRoutes: phone lookup, rate limited per IP
func PublicTenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tenantController.NewTenantController(db)

	limit := middlewares.PublicLookupRateLimiter(configs.GetEnvInt("PUBLIC_LOOKUP_MAX_PER_MIN", 20), time.Minute)
	r.Get("/public/tenants/search", limit, ctl.PublicSearch)
}
