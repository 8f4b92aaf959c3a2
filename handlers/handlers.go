package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"ticketing-webapp/model"
)

func tokenClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("identity").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func isAdminRole(c *fiber.Ctx) bool {
	return tokenClaims(c)["role"].(string) == model.RoleAdmin
}

func isOrganizerRole(c *fiber.Ctx) bool {
	return tokenClaims(c)["role"].(string) == model.RoleOrganizer
}

func identityUserId(c *fiber.Ctx) int64 {
	// numeric JWT claims decode as float64
	return int64(tokenClaims(c)["userId"].(float64))
}

func paramId(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
