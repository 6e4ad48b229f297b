package controllers

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type registerInput struct {
	LicenseKey      string `json:"license_key" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	CompanyName     string `json:"company_name" validate:"required"`
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	State           string `json:"state" validate:"required"`
	Pincode         string `json:"pincode" validate:"required"`
	GSTIN           string `json:"gstin" validate:"omitempty,gstin"`
	PAN             string `json:"pan"`
	BankName        string `json:"bank_name"`
	AccountNo       string `json:"account_no"`
	IFSC            string `json:"ifsc"`
}

// Register onboards a tenant: a valid unused license key for the email is
// required, then the user, company profile and tenant schema are created
// in one transaction and the key is burned.
func Register(c *fiber.Ctx) error {
	var in registerInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.Password != in.PasswordConfirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}
	if in.IFSC != "" && !ifscPattern.MatchString(in.IFSC) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid IFSC code")
	}

	var mailExist models.User
	database.DB.Where("email = ?", in.Email).First(&mailExist)
	if mailExist.Email != "" {
		return fiber.NewError(fiber.StatusBadRequest, "email already exists")
	}

	schemaName, err := createSchema(in.CompanyName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "registration failed: "+err.Error())
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Burn the license key first; registration fails if it is missing,
		// already used, or issued for a different email.
		var lic models.LicenseKey
		if err := tx.Where("key = ? AND email = ?", in.LicenseKey, in.Email).First(&lic).Error; err != nil {
			return fiber.NewError(fiber.StatusForbidden, "license key not valid for this email")
		}
		if lic.Used {
			return fiber.NewError(fiber.StatusForbidden, "license key already activated")
		}
		now := time.Now().UTC()
		lic.Used = true
		lic.ActivatedAt = &now
		if err := tx.Save(&lic).Error; err != nil {
			return err
		}

		user := models.User{
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Email:      in.Email,
			SchemaName: schemaName,
		}
		user.SetPassword(in.Password)
		if err := tx.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not create user")
		}

		company := models.Company{
			CompanyName: in.CompanyName,
			Address:     in.Address,
			City:        in.City,
			State:       in.State,
			Pincode:     in.Pincode,
			GSTIN:       strings.ToUpper(strings.TrimSpace(in.GSTIN)),
			PAN:         strings.ToUpper(strings.TrimSpace(in.PAN)),
			Email:       in.Email,
			BankName:    in.BankName,
			AccountNo:   in.AccountNo,
			IFSC:        strings.ToUpper(in.IFSC),
			UserId:      user.Id,
			SchemaName:  schemaName,
		}
		if err := tx.Create(&company).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "could not create company profile")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := database.MigrateTenantSchema(schemaName); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not migrate tenant schema")
	}

	var company models.Company
	database.DB.Preload("User").Where("schema_name = ?", schemaName).First(&company)
	return c.Status(fiber.StatusCreated).JSON(company)
}

var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

func createSchema(company string) (string, error) {
	safeName := strings.ToLower(strings.TrimSpace(company))
	safeName = strings.ReplaceAll(safeName, " ", "_")
	// Only letters, numbers, underscores; must start with letter/underscore
	valid := regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	if !valid.MatchString(safeName) {
		return "", fmt.Errorf("invalid schema name after sanitization: %s", safeName)
	}

	if err := database.DB.Exec("CREATE SCHEMA IF NOT EXISTS " + safeName).Error; err != nil {
		return "", err
	}
	return safeName, nil
}

func Login(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(data["email"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email format")
	}

	var user models.User
	database.DB.Table("public.users").Where("email = ?", data["email"]).First(&user)
	if _, err := uuid.Parse(user.Id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}
	if err := user.ComparePassword(data["password"]); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid credentials")
	}

	token, err := middlewares.GenerateJWT(user.Id, user.SchemaName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not issue token")
	}

	if err := database.MigrateTenantSchema(user.SchemaName); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not migrate tenant schema")
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"schema": user.SchemaName,
		"user": fiber.Map{
			"id":    user.Id,
			"name":  user.FirstName + " " + user.LastName,
			"email": user.Email,
		},
	})
}

func Logout(c *fiber.Ctx) error {
	cookie := fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	}
	c.Cookie(&cookie)
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
