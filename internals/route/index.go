// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	"hostelku_backend/internals/features/finance/rent_payments/gateway"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
	routeDetails "hostelku_backend/internals/route/details"
)

var startTime time.Time

// Options lets tests swap the gateway and secret without touching env vars.
type Options struct {
	JWTSecret string
	Gateway   gateway.Gateway
}

// DefaultOptions reads the loaded config. No MIDTRANS_SERVER_KEY means no gateway.
func DefaultOptions() Options {
	opts := Options{JWTSecret: configs.JWTSecret}
	if mt := gateway.NewMidtrans(configs.MidtransServerKey, configs.MidtransUseProd); mt != nil {
		opts.Gateway = mt
	}
	return opts
}

func SetupRoutes(app *fiber.App, db *gorm.DB, opts Options) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// registered before the auth group so /api/* auth never runs for them
	log.Println("[INFO] Mounting PUBLIC routes...")
	public := app.Group("/api")
	routeDetails.HostelPublicRoutes(public, db)
	routeDetails.TenantPublicRoutes(public, db)
	routeDetails.FinancePublicRoutes(public, db, opts.Gateway)

	// ===================== OWNER (bearer) =====================
	log.Println("[INFO] Mounting OWNER routes...")
	owner := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              opts.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.HostelOwnerRoutes(owner, db)
	routeDetails.TenantOwnerRoutes(owner, db)
	routeDetails.FinanceOwnerRoutes(owner, db, opts.Gateway)

	if opts.Gateway == nil {
		log.Println("[INFO] online checkout disabled (no gateway)")
	}
}
