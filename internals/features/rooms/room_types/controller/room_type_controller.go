// file: internals/features/rooms/room_types/controller/room_type_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	blockService "hostelku_backend/internals/features/hostels/blocks/service"
	"hostelku_backend/internals/features/rooms/room_types/dto"
	"hostelku_backend/internals/features/rooms/room_types/model"
	"hostelku_backend/internals/features/rooms/room_types/service"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

type RoomTypeController struct {
	DB *gorm.DB
}

func NewRoomTypeController(db *gorm.DB) *RoomTypeController {
	return &RoomTypeController{DB: db}
}

func (h *RoomTypeController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrRoomTypeNotFound),
		errors.Is(err, blockService.ErrBlockNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrComponentNotInBlock):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	log.Printf("[ERROR] room types %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

func (h *RoomTypeController) ownedBlock(c *fiber.Ctx) (*blockModel.BlockModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("blockId")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "blockId must be a UUID")
	}
	b, err := blockService.FindOwnedBlock(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, blockService.ErrBlockNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return b, err
}

func (h *RoomTypeController) owned(c *fiber.Ctx) (*model.RoomTypeModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id must be a UUID")
	}
	m, err := service.FindOwnedRoomType(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, service.ErrRoomTypeNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return m, err
}

func (h *RoomTypeController) respond(c *fiber.Ctx, m *model.RoomTypeModel) (dto.RoomTypeResponse, error) {
	comps, err := service.OrderedComponents(c.UserContext(), h.DB, []uuid.UUID{m.RoomTypeID})
	if err != nil {
		return dto.RoomTypeResponse{}, err
	}
	return dto.FromModel(m, comps[m.RoomTypeID]), nil
}

/* =========================
   GET /blocks/:blockId/room-types
========================= */

func (h *RoomTypeController) List(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}
	var rows []model.RoomTypeModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("room_type_block_id = ?", b.BlockID).
		Order("room_type_name ASC").
		Find(&rows).Error; err != nil {
		return h.fail(c, err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RoomTypeID)
	}
	comps, err := service.OrderedComponents(c.UserContext(), h.DB, ids)
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]dto.RoomTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i], comps[rows[i].RoomTypeID]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

/* =========================
   POST /blocks/:blockId/room-types
========================= */

func (h *RoomTypeController) Create(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}
	var req dto.CreateRoomTypeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if req.Rent.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "rent must not be negative")
	}

	m := req.ToModel(b.BlockID, b.BlockOwnerUserID)
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return service.ReplaceComponents(tx, m.RoomTypeID, b.BlockID, dto.ParseIDs(req.ComponentIDs))
	})
	if err != nil {
		return h.fail(c, err)
	}
	resp, err := h.respond(c, m)
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonCreated(c, "room type created", resp)
}

/* =========================
   GET /room-types/:id
========================= */

func (h *RoomTypeController) Get(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	resp, err := h.respond(c, m)
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonOK(c, "ok", resp)
}

/* =========================
   PATCH /room-types/:id
========================= */

func (h *RoomTypeController) Update(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateRoomTypeRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if req.Rent != nil && req.Rent.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "rent must not be negative")
	}
	req.Apply(m)

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if req.ComponentIDs == nil {
			return nil
		}
		return service.ReplaceComponents(tx, m.RoomTypeID, m.RoomTypeBlockID, dto.ParseIDs(*req.ComponentIDs))
	})
	if err != nil {
		return h.fail(c, err)
	}
	resp, err := h.respond(c, m)
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonUpdated(c, "room type updated", resp)
}

/* =========================
   DELETE /room-types/:id
========================= */

// Delete soft-deletes the room type. Tenants keep their room type name snapshot.
func (h *RoomTypeController) Delete(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("room_type_component_room_type_id = ?", m.RoomTypeID).
			Delete(&model.RoomTypeComponentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return h.fail(c, err)
	}
	return helper.JsonDeleted(c, "room type deleted", fiber.Map{"id": m.RoomTypeID})
}
