// file: internals/features/rooms/room_types/route/room_type_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rtController "hostelku_backend/internals/features/rooms/room_types/controller"
)

// OwnerRoomTypeRoutes: behind AuthJWT
func OwnerRoomTypeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rtController.NewRoomTypeController(db)

	r.Get("/blocks/:blockId/room-types", ctl.List)
	r.Post("/blocks/:blockId/room-types", ctl.Create)

	g := r.Group("/room-types")
	{
		g.Get("/:id", ctl.Get)
		g.Patch("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}
