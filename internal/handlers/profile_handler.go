package handlers

import (
	"encoding/json"
	"errors"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/dto"
	"github.com/SeloLim/naturia/internal/models"
	"github.com/SeloLim/naturia/internal/profile"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	sessions *session.Manager
	profiles *profile.Service
}

func NewProfileHandler(sessions *session.Manager, profiles *profile.Service) *ProfileHandler {
	return &ProfileHandler{sessions: sessions, profiles: profiles}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	user, err := h.profiles.Get(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(user)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.profiles.Update(c.UserContext(), userID, profile.UpdateParams{
		FullName:  req.FullName,
		Phone:     req.Phone,
		SkinType:  req.SkinType,
		BirthDate: req.BirthDate,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(user)
}

func (h *ProfileHandler) Addresses(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	addresses, err := h.profiles.Addresses(c.UserContext(), userID)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(addresses)
}

func (h *ProfileHandler) AddAddress(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Recipient, phone and full address fields are required")
	}

	created, err := h.profiles.AddAddress(c.UserContext(), userID, &models.Address{
		UserID:        userID,
		Label:         req.Label,
		RecipientName: req.RecipientName,
		PhoneNumber:   req.PhoneNumber,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		Province:      req.Province,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateAddress forwards a partial update; only the fields present in the
// body change.
func (h *ProfileHandler) UpdateAddress(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	addressID, err := c.ParamsInt("addressID")
	if err != nil {
		return badRequest(c, "Invalid address id")
	}

	patch := map[string]any{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.profiles.UpdateAddress(c.UserContext(), userID, int64(addressID), patch)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(updated)
}

func (h *ProfileHandler) DeleteAddress(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	addressID, err := c.ParamsInt("addressID")
	if err != nil {
		return badRequest(c, "Invalid address id")
	}
	if err := h.profiles.DeleteAddress(c.UserContext(), userID, int64(addressID)); err != nil {
		if errors.Is(err, adminapi.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Address not found",
			})
		}
		return respondUpstream(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetDefaultAddress flips the default flag; the admin API guarantees
// exactly one default per user afterwards.
func (h *ProfileHandler) SetDefaultAddress(c *fiber.Ctx) error {
	userID, err := h.sessions.CurrentUserID(c)
	if err != nil {
		return unauthorized(c, "Not authenticated")
	}
	addressID, err := c.ParamsInt("addressID")
	if err != nil {
		return badRequest(c, "Invalid address id")
	}
	if err := h.profiles.SetDefaultAddress(c.UserContext(), userID, int64(addressID)); err != nil {
		return respondUpstream(c, err)
	}
	return c.JSON(fiber.Map{"message": "Default address updated"})
}
