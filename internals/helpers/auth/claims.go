package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys di fiber Locals (diisi oleh middleware AuthJWT)
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "user_role"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// GetUserID mengambil user id (UUID) dari Locals; error kalau kosong/invalid.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals(LocUserID).(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetUserEmail mengambil email user dari Locals.
func GetUserEmail(c *fiber.Ctx) (string, error) {
	v, _ := c.Locals(LocUserEmail).(string)
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "email tidak ditemukan di token")
	}
	return v, nil
}

func GetUserRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocUserRole).(string)
	return strings.TrimSpace(strings.ToLower(v))
}

func IsAdmin(c *fiber.Ctx) bool  { return GetUserRole(c) == RoleAdmin }
func IsClient(c *fiber.Ctx) bool { return GetUserRole(c) == RoleClient }
