package controllers

import (
	"os"
	"strings"
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type licenseValidateInput struct {
	Key   string `json:"key" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ValidateLicense checks a key/email pair without consuming it, so the
// onboarding form can verify before submitting registration.
func ValidateLicense(c *fiber.Ctx) error {
	var in licenseValidateInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	var lic models.LicenseKey
	database.DB.Where("key = ? AND email = ?", strings.TrimSpace(in.Key), in.Email).First(&lic)
	if lic.ID == 0 {
		return fiber.NewError(fiber.StatusNotFound, "license key not found for this email")
	}
	if lic.Used {
		return fiber.NewError(fiber.StatusConflict, "license key already activated")
	}
	return c.JSON(fiber.Map{
		"valid":     true,
		"issued_at": lic.IssuedAt,
	})
}

type licenseIssueInput struct {
	Email string `json:"email" validate:"required,email"`
}

// IssueLicense mints a key for an email address. Guarded by a shared admin
// secret rather than tenant auth since it runs before any tenant exists.
func IssueLicense(c *fiber.Ctx) error {
	secret := os.Getenv("ADMIN_API_KEY")
	if secret == "" || c.Get("X-Admin-Key") != secret {
		return fiber.NewError(fiber.StatusUnauthorized, "admin key required")
	}

	var in licenseIssueInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	lic := models.LicenseKey{
		Key:      uuid.NewString(),
		Email:    in.Email,
		IssuedAt: time.Now().UTC(),
	}
	if err := database.DB.Create(&lic).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue license key")
	}
	return c.Status(fiber.StatusCreated).JSON(lic)
}
