package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Gauravsingh640/Quickart/internal/auth/dto"
	"github.com/Gauravsingh640/Quickart/internal/auth/service"
	autherror "github.com/Gauravsingh640/Quickart/internal/errors"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

// fail maps a classified service error onto the response envelope. The
// message goes to the client verbatim; only the kind picks the status code.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var classified *autherror.Error
	if errors.As(err, &classified) {
		switch classified.Kind {
		case autherror.KindValidation, autherror.KindConflict, autherror.KindAuth:
			status = fiber.StatusBadRequest
		case autherror.KindNotFound:
			status = fiber.StatusNotFound
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, autherror.ErrAllFieldsRequired)
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token := c.Params("token")

	message, err := h.userService.VerifyEmail(c.Context(), token)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

func (h *AuthHandler) Reverify(c *fiber.Ctx) error {
	var input dto.ReverifyInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, autherror.ErrEmailRequired)
	}

	if err := h.userService.ResendVerification(c.Context(), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Verification email sent",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, autherror.ErrAllFieldsRequired)
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Login successful",
		"user":         result.User,
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(userIDKey).(string)

	if err := h.userService.Logout(c.Context(), userID); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
