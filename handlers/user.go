package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ticketing-webapp/database"
	"ticketing-webapp/httperr"
	"ticketing-webapp/model"
)

func GetAllCustomers(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	customers, dbErr := database.GetUsersByRole(model.RoleCustomer)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(customers)
}

func GetAllOrganizers(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return httperr.RaisePermissionsError(c, "only admin can perform this operation")
	}

	organizers, dbErr := database.GetUsersByRole(model.RoleOrganizer)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	return c.JSON(organizers)
}
