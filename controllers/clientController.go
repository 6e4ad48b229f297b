package controllers

import (
	"strings"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type clientCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	GSTIN       string `json:"gstin" validate:"omitempty,gstin"`
}

type clientUpdateInput struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	GSTIN       *string `json:"gstin" validate:"omitempty,gstin"`
}

func CreateClient(c *fiber.Ctx) error {
	var in clientCreateInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	client := models.Client{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Pincode:     in.Pincode,
		GSTIN:       strings.ToUpper(in.GSTIN),
		Active:      true,
	}
	if err := db.Create(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func GetClients(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var clients []models.Client
	db.Order("name").Find(&clients)
	return c.JSON(fiber.Map{"clients": clients})
}

func GetClient(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var client models.Client
	if err := db.First(&client, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return err
	}
	return c.JSON(client)
}

func UpdateClient(c *fiber.Ctx) error {
	var in clientUpdateInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	res := db.Model(&models.Client{}).Where("id = ?", c.Params("id")).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}

	var client models.Client
	db.First(&client, "id = ?", c.Params("id"))
	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.Client{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete client")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
