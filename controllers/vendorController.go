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

type vendorCreateInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	State         string `json:"state"`
	GSTIN         string `json:"gstin" validate:"omitempty,gstin"`
	TDSApplicable bool   `json:"tds_applicable"`
}

type vendorUpdateInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	PhoneNumber   *string `json:"phone_number"`
	Address       *string `json:"address"`
	State         *string `json:"state"`
	GSTIN         *string `json:"gstin" validate:"omitempty,gstin"`
	TDSApplicable *bool   `json:"tds_applicable"`
}

func CreateVendor(c *fiber.Ctx) error {
	var in vendorCreateInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	vendor := models.Vendor{
		Name:          in.Name,
		Email:         in.Email,
		PhoneNumber:   in.PhoneNumber,
		Address:       in.Address,
		State:         in.State,
		GSTIN:         strings.ToUpper(in.GSTIN),
		TDSApplicable: in.TDSApplicable,
	}
	if err := db.Create(&vendor).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create vendor")
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

func GetVendors(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var vendors []models.Vendor
	db.Order("name").Find(&vendors)
	return c.JSON(fiber.Map{"vendors": vendors})
}

func GetVendor(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "vendor not found")
		}
		return err
	}
	return c.JSON(vendor)
}

func UpdateVendor(c *fiber.Ctx) error {
	var in vendorUpdateInput
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
	res := db.Model(&models.Vendor{}).Where("id = ?", c.Params("id")).Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update vendor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "vendor not found")
	}

	var vendor models.Vendor
	db.First(&vendor, "id = ?", c.Params("id"))
	return c.JSON(vendor)
}

func DeleteVendor(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.Vendor{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete vendor")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "vendor not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
