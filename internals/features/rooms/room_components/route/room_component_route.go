// file: internals/features/rooms/room_components/route/room_component_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rcController "hostelku_backend/internals/features/rooms/room_components/controller"
)

// OwnerRoomComponentRoutes: behind AuthJWT
func OwnerRoomComponentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rcController.NewRoomComponentController(db)

	r.Get("/blocks/:blockId/room-components", ctl.List)
	r.Post("/blocks/:blockId/room-components", ctl.Create)

	g := r.Group("/room-components")
	{
		g.Patch("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}
