// file: internals/route/details/hostel_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BlockRoute "hostelku_backend/internals/features/hostels/blocks/route"
	HostelRoute "hostelku_backend/internals/features/hostels/hostels/route"
	RoomComponentRoute "hostelku_backend/internals/features/rooms/room_components/route"
	RoomTypeRoute "hostelku_backend/internals/features/rooms/room_types/route"
)

func HostelPublicRoutes(r fiber.Router, db *gorm.DB) {
	HostelRoute.PublicHostelRoutes(r, db)
}

func HostelOwnerRoutes(r fiber.Router, db *gorm.DB) {
	HostelRoute.OwnerHostelRoutes(r, db)
	BlockRoute.OwnerBlockRoutes(r, db)
	RoomComponentRoute.OwnerRoomComponentRoutes(r, db)
	RoomTypeRoute.OwnerRoomTypeRoutes(r, db)
}
