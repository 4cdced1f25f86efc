// file: internals/features/hostels/blocks/route/block_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	blockController "hostelku_backend/internals/features/hostels/blocks/controller"
)

// OwnerBlockRoutes: behind AuthJWT
func OwnerBlockRoutes(r fiber.Router, db *gorm.DB) {
	ctl := blockController.NewBlockController(db)

	g := r.Group("/blocks")
	{
		g.Get("/", ctl.List)
		g.Post("/", ctl.Create)
		g.Get("/:blockId", ctl.Get)
		g.Patch("/:blockId", ctl.Update)
		g.Delete("/:blockId", ctl.Delete)

		g.Get("/:blockId/payment-settings", ctl.GetPaymentSettings)
		g.Put("/:blockId/payment-settings", ctl.UpdatePaymentSettings)
	}
}
