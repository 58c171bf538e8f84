package Controllers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/middleware"
)

// Login checks credentials and sets the jwt cookie.
func Login(c *fiber.Ctx) error {
	var input Models.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	var user Models.User
	if err := Models.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Nom d’utilisateur ou mot de passe incorrect",
		})
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Nom d’utilisateur ou mot de passe incorrect",
		})
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(user.ID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour * 30)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(middleware.SecretKey))
	if err != nil {
		log.Println("could not sign token:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not login"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour * 30),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "Bonjour " + user.Name,
		"user":    user,
	})
}

// Logout clears the jwt cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// User returns the authenticated account.
func User(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// ValidateToken lets a client check whether its cookie is still good.
func ValidateToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"valid": true, "user": middleware.CurrentUser(c)})
}

// UpdateToken stores an FCM device token for the authenticated user.
func UpdateToken(c *fiber.Ctx) error {
	var req Models.UpdateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	user := middleware.CurrentUser(c)
	var token Models.DeviceToken
	err := Models.DB.Where("user_id = ? AND value = ?", user.ID, req.Value).
		FirstOrCreate(&token, Models.DeviceToken{UserID: user.ID, Value: req.Value}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create/update token",
		})
	}

	return c.JSON(fiber.Map{"message": "Token updated successfully"})
}
