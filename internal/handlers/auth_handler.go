package handlers

import (
	"errors"

	"github.com/SeloLim/naturia/internal/dto"
	"github.com/SeloLim/naturia/internal/session"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *session.Manager
}

func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	user, err := h.sessions.Login(c, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return unauthorized(c, err.Error())
		}
		return respondUpstream(c, err)
	}
	return c.JSON(dto.AuthResponse{User: *user})
}

// Register creates the account without starting a session; the client
// redirects to the login page afterwards.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, "Email required and password must be at least 8 characters")
	}

	user, err := h.sessions.Register(c.UserContext(), req.Email, req.Password, req.FullName)
	if err != nil {
		return respondUpstream(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{User: *user})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c)
	return c.Redirect("/auth", fiber.StatusFound)
}

// Session reports the current session to the presentation layer. An expired
// access token costs exactly one refresh attempt; when that fails too, the
// session is gone and the caller sees 401.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	if !h.sessions.IsAuthenticated(c) {
		return c.JSON(dto.SessionResponse{Authenticated: false})
	}

	user, err := h.sessions.Profile(c)
	if err != nil {
		if errors.Is(err, session.ErrSessionExpired) || errors.Is(err, session.ErrNotAuthenticated) {
			return unauthorized(c, "Session expired. Please login again.")
		}
		return respondUpstream(c, err)
	}

	resp := dto.SessionResponse{Authenticated: true, User: user}
	if expiresAt, err := h.sessions.TokenExpiresAt(c); err == nil {
		resp.ExpiresAt = &expiresAt
	}
	return c.JSON(resp)
}
