// file: internals/features/hostels/hostels/controller/hostel_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/features/hostels/hostels/dto"
	"hostelku_backend/internals/features/hostels/hostels/model"
	"hostelku_backend/internals/features/hostels/hostels/service"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

type HostelController struct {
	DB *gorm.DB
}

func NewHostelController(db *gorm.DB) *HostelController {
	return &HostelController{DB: db}
}

func (h *HostelController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrHostelNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "slug already taken")
	}
	log.Printf("[ERROR] hostels %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

func (h *HostelController) owned(c *fiber.Ctx) (*model.HostelModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id must be a UUID")
	}
	m, err := service.FindOwnedHostel(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, service.ErrHostelNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return m, err
}

/* =========================
   GET /hostels
========================= */

func (h *HostelController) List(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var rows []model.HostelModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("hostel_owner_user_id = ?", ownerID).
		Order("hostel_created_at DESC").
		Find(&rows).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

/* =========================
   POST /hostels
========================= */

func (h *HostelController) Create(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateHostelRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	m := req.ToModel(ownerID)
	slugSrc := m.HostelName
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slugSrc = *req.Slug
	}
	if m.HostelSlug, err = service.UniqueSlug(c.UserContext(), h.DB, slugSrc, nil); err != nil {
		return h.fail(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonCreated(c, "hostel created", dto.FromModel(m))
}

/* =========================
   GET /hostels/:id
========================= */

func (h *HostelController) Get(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* =========================
   PATCH /hostels/:id
========================= */

func (h *HostelController) Update(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateHostelRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	req.Apply(m)
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		if m.HostelSlug, err = service.UniqueSlug(c.UserContext(), h.DB, *req.Slug, &m.HostelID); err != nil {
			return h.fail(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonUpdated(c, "hostel updated", dto.FromModel(m))
}

/* =========================
   DELETE /hostels/:id
========================= */

// Delete soft-deletes the hostel; its blocks stay and are detached.
func (h *HostelController) Delete(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&blockModel.BlockModel{}).
			Where("block_hostel_id = ?", m.HostelID).
			Update("block_hostel_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonDeleted(c, "hostel deleted", fiber.Map{"id": m.HostelID})
}

/* =========================
   GET /hostels/:id/profile (public)
========================= */

func (h *HostelController) Profile(c *fiber.Ctx) error {
	p, err := service.LoadProfile(c.UserContext(), h.DB, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonOK(c, "ok", p)
}
