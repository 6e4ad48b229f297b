package controllers

import (
	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCompany(c *fiber.Ctx) error {
	company, err := currentCompany(c)
	if err != nil {
		return err
	}
	return c.JSON(company)
}

type companyUpdateInput struct {
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	GSTIN       *string `json:"gstin" validate:"omitempty,gstin"`
	PAN         *string `json:"pan"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	BankName    *string `json:"bank_name"`
	AccountNo   *string `json:"account_no"`
	IFSC        *string `json:"ifsc"`
	LogoURL     *string `json:"logo_url"`
}

func UpdateCompany(c *fiber.Ctx) error {
	var in companyUpdateInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&in)
	if in.IFSC != nil && *in.IFSC != "" && !ifscPattern.MatchString(*in.IFSC) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid IFSC code")
	}

	company, err := currentCompany(c)
	if err != nil {
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}
	if err := database.DB.Table("public.companies").Where("id = ?", company.Id).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update company profile")
	}

	company, err = currentCompany(c)
	if err != nil {
		return err
	}
	return c.JSON(company)
}
