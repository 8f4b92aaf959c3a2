package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"ticketing-webapp/config"
	"ticketing-webapp/database"
	"ticketing-webapp/httperr"
	"ticketing-webapp/model"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

func Register(c *fiber.Ctx) error {
	type Registration struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		Role            string `json:"role"`
	}

	reg := new(Registration)
	if err := c.BodyParser(reg); err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", err))
	}

	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(strings.ToLower(reg.Email))

	if validationErr := validateRegistrationInput(reg.Name, reg.Email, reg.Password, reg.ConfirmPassword, reg.Role); validationErr != nil {
		return httperr.RaiseBadRequestError(c,
			fmt.Sprintf("incorrect input for registration parameters: %v", validationErr))
	}

	// admin accounts are only created by an already authenticated admin
	if reg.Role == model.RoleAdmin {
		if c.Locals("identity") == nil || !isAdminRole(c) {
			return httperr.RaisePermissionsError(c, "only admin can create admin accounts")
		}
	}

	_, exists, dbErr := database.GetUserByEmail(reg.Email)
	if dbErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", dbErr))
	}
	if exists {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("user with email %v already exists", reg.Email))
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if hashErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("cannot hash password: %v", hashErr))
	}

	userId, idErr := database.NextSequence("users")
	if idErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", idErr))
	}

	newUser := model.User{
		Id:             userId,
		Name:           reg.Name,
		Email:          reg.Email,
		Role:           reg.Role,
		HashedPassword: string(hash),
	}

	if writeErr := database.InsertUser(newUser); writeErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", writeErr))
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("user %v registered", newUser.Email)})
}

func Login(c *fiber.Ctx) error {
	type Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	creds := new(Credentials)
	if err := c.BodyParser(creds); err != nil {
		return httperr.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, exists, getErr := database.GetUserByEmail(strings.TrimSpace(strings.ToLower(creds.Email)))
	if getErr != nil {
		return httperr.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", getErr))
	}

	if !exists || !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid email or password",
			"data":    nil})
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = user.Id
	claims["name"] = user.Name
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(time.Hour * time.Duration(config.TOKEN_TTL_HOURS)).Unix()

	sign, envErr := config.GetSecret("SIGN")
	if envErr != nil {
		log.Print(envErr)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"token":    t,
		"role":     user.Role,
		"userId":   user.Id,
		"name":     user.Name,
		"loggedIn": true,
	})
}

// Logout acknowledges the logout. Tokens are stateless; the session object on
// the client side clears its own state.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "logged out"})
}

func validateRegistrationInput(name, email, password, confirmPassword, role string) error {
	if len(name) < 2 {
		return fmt.Errorf("name is too short")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email is not valid")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	switch role {
	case model.RoleCustomer, model.RoleOrganizer, model.RoleAdmin:
		return nil
	}
	return fmt.Errorf("unknown role %v", role)
}
