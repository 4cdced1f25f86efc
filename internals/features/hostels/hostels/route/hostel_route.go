// file: internals/features/hostels/hostels/route/hostel_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hostelController "hostelku_backend/internals/features/hostels/hostels/controller"
)

// OwnerHostelRoutes: behind AuthJWT
func OwnerHostelRoutes(r fiber.Router, db *gorm.DB) {
	ctl := hostelController.NewHostelController(db)

	g := r.Group("/hostels")
	{
		g.Get("/", ctl.List)
		g.Post("/", ctl.Create)
		g.Get("/:id", ctl.Get)
		g.Patch("/:id", ctl.Update)
		g.Delete("/:id", ctl.Delete)
	}
}

// PublicHostelRoutes: no auth, profile only shows hostels with online presence on
func PublicHostelRoutes(r fiber.Router, db *gorm.DB) {
	ctl := hostelController.NewHostelController(db)
	r.Get("/hostels/:id/profile", ctl.Profile)
}
