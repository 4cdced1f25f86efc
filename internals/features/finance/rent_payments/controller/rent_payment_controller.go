// file: internals/features/finance/rent_payments/controller/rent_payment_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/finance/rent_payments/dto"
	"hostelku_backend/internals/features/finance/rent_payments/gateway"
	"hostelku_backend/internals/features/finance/rent_payments/service"
	blockService "hostelku_backend/internals/features/hostels/blocks/service"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

/* =========================
   Controller
========================= */

type RentPaymentController struct {
	DB      *gorm.DB
	Svc     *service.Service
	Gateway gateway.Gateway // nil when no server key is configured
}

func NewRentPaymentController(db *gorm.DB, gw gateway.Gateway) *RentPaymentController {
	return &RentPaymentController{DB: db, Svc: service.New(db), Gateway: gw}
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a UUID")
	}
	return id, nil
}

// writeServiceError maps service sentinels to HTTP codes.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, blockService.ErrBlockNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMessageRequired):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoChanges),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidPaidDate),
		errors.Is(err, service.ErrLabelNotAllowed),
		errors.Is(err, service.ErrLabelRequired):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrCancelled),
		errors.Is(err, service.ErrGenerationDisabled),
		errors.Is(err, service.ErrAlreadyPaid):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gateway.ErrNotConfigured):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "duplicate payment")
	}
	log.Printf("[ERROR] rent payments %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

/* =========================
   POST /rent-payments/refresh
========================= */

func (h *RentPaymentController) Refresh(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var req dto.RefreshRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	res, err := h.Svc.Refresh(c.UserContext(), ownerID, uuid.MustParse(req.BlockID))
	if err != nil {
		return writeServiceError(c, err)
	}
	log.Printf("[INFO] rent refresh block=%s tenants=%d generated=%d skipped=%d", req.BlockID, res.Tenants, res.Generated, res.Skipped)
	return helper.JsonOK(c, "rent payments refreshed", res)
}

/* =========================
   GET /rent-payments
========================= */

func (h *RentPaymentController) List(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	f := service.ListFilter{Status: c.Query("status")}
	if s := strings.TrimSpace(c.Query("tenantId")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenantId must be a UUID")
		}
		f.TenantID = &id
	}
	if s := strings.TrimSpace(c.Query("blockId")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "blockId must be a UUID")
		}
		f.BlockID = &id
	}
	f.Year, _ = strconv.Atoi(c.Query("year"))
	f.Month, _ = strconv.Atoi(c.Query("month"))
	if f.Month < 0 || f.Month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be 1-12")
	}

	pg := helper.ResolvePaging(c, 50, 200)
	f.Offset, f.Limit = pg.Offset, pg.Limit

	rows, total, err := h.Svc.List(c.UserContext(), ownerID, f)
	if err != nil {
		return writeServiceError(c, err)
	}
	now := h.Svc.LocalNow()
	pagination := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	data := dto.FromModels(rows, now, true)

	if f.TenantID == nil {
		return helper.JsonList(c, "ok", data, &pagination)
	}

	// whole-tenant summary, not just this page
	all, _, err := h.Svc.List(c.UserContext(), ownerID, service.ListFilter{TenantID: f.TenantID})
	if err != nil {
		return writeServiceError(c, err)
	}
	summary := service.SummarizeDue(all, now, 0, false)
	return helper.JsonListEx(c, "ok", data, &pagination, fiber.Map{"dueSummary": summary})
}

/* =========================
   GET /rent-payments/:id
========================= */

func (h *RentPaymentController) Get(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.Svc.Get(c.UserContext(), ownerID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(p, h.Svc.LocalNow(), true))
}

/* =========================
   PUT /rent-payments/:id/edit
========================= */

func (h *RentPaymentController) Edit(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.EditRentPaymentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	p, err := h.Svc.Edit(c.UserContext(), ownerID, id, req.ToInput(helperAuth.Actor(c)))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "payment updated", dto.FromModel(p, h.Svc.LocalNow(), true))
}

/* =========================
   DELETE /rent-payments/:id/remove
========================= */

func (h *RentPaymentController) Cancel(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CancelRentPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
		}
	}
	if strings.TrimSpace(req.Message) == "" {
		req.Message = c.Query("message")
	}

	p, err := h.Svc.Cancel(c.UserContext(), ownerID, id, req.Message, helperAuth.Actor(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "payment cancelled", dto.FromModel(p, h.Svc.LocalNow(), true))
}

/* =========================
   POST /rent-payments
========================= */

func (h *RentPaymentController) CreateAdditional(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateAdditionalChargeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	p, err := h.Svc.CreateAdditional(c.UserContext(), ownerID, req.ToInput())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "charge created", dto.FromModel(p, h.Svc.LocalNow(), true))
}

/* =========================
   POST /rent-payments/:id/checkout
========================= */

func (h *RentPaymentController) Checkout(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if h.Gateway == nil {
		return writeServiceError(c, gateway.ErrNotConfigured)
	}

	res, err := h.Svc.Checkout(c.UserContext(), ownerID, id, h.Gateway)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "checkout created", res)
}

/* =========================
   POST /webhooks/midtrans (public)
========================= */

func (h *RentPaymentController) MidtransWebhook(c *fiber.Ctx) error {
	if h.Gateway == nil {
		return writeServiceError(c, gateway.ErrNotConfigured)
	}

	var notif gateway.Notification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !gateway.VerifySignature(notif, h.Gateway.ServerKey()) {
		log.Printf("[WARN] midtrans webhook bad signature order=%s", notif.OrderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	outcome, err := h.Svc.ApplyNotification(c.UserContext(), notif)
	if err != nil {
		return writeServiceError(c, err)
	}
	log.Printf("[INFO] midtrans webhook order=%s status=%s outcome=%s", notif.OrderID, notif.TransactionStatus, outcome)

	// always 200 for verified notifications so Midtrans stops retrying
	return helper.JsonOK(c, "webhook processed", fiber.Map{
		"order_id":           notif.OrderID,
		"transaction_status": notif.TransactionStatus,
		"outcome":            outcome,
	})
}
