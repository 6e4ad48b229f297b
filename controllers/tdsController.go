package controllers

import (
	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/tax"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type tdsRuleInput struct {
	Category       string  `json:"category" validate:"required"`
	Section        string  `json:"section"`
	RatePercentage float64 `json:"rate_percentage" validate:"required,gte=0,lte=100"`
	VendorId       uint    `json:"vendor_id" validate:"required"`
}

func CreateTDSRule(c *fiber.Ctx) error {
	var in tdsRuleInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", in.VendorId).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
	}

	rule := models.TDSRule{
		Category:       in.Category,
		Section:        in.Section,
		RatePercentage: in.RatePercentage,
		VendorId:       in.VendorId,
		Active:         true,
	}
	if err := db.Create(&rule).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create TDS rule")
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func GetTDSRules(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rules []models.TDSRule
	q := db.Order("category")
	if v := c.Query("vendor_id"); v != "" {
		q = q.Where("vendor_id = ?", v)
	}
	q.Find(&rules)
	return c.JSON(fiber.Map{"tds_rules": rules})
}

func UpdateTDSRule(c *fiber.Ctx) error {
	var in tdsRuleInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rule models.TDSRule
	if err := db.First(&rule, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "TDS rule not found")
		}
		return err
	}

	rule.Category = in.Category
	rule.Section = in.Section
	rule.RatePercentage = in.RatePercentage
	rule.VendorId = in.VendorId
	if err := db.Save(&rule).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update TDS rule")
	}
	return c.JSON(rule)
}

func DeleteTDSRule(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.TDSRule{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete TDS rule")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "TDS rule not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}

type tdsPreviewInput struct {
	Amount   float64 `json:"amount" validate:"gte=0"`
	VendorId uint    `json:"vendor_id" validate:"required"`
}

// PreviewTDS mirrors the reactive tds_amount computation the expense form
// runs on every amount/vendor change, without persisting anything.
func PreviewTDS(c *fiber.Ctx) error {
	var in tdsPreviewInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	amount, ruleID := vendorTDS(db, in.VendorId, in.Amount)
	return c.JSON(fiber.Map{
		"tds_amount":  amount,
		"tds_rule_id": ruleID,
	})
}

// vendorTDS resolves the vendor's active TDS rule and computes the
// withholding. Vendors without an applicable rule yield zero and no rule
// reference; that is a normal outcome, not an error.
func vendorTDS(db *gorm.DB, vendorID uint, amount float64) (float64, *uint) {
	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", vendorID).Error; err != nil || !vendor.TDSApplicable {
		return 0, nil
	}
	var rule models.TDSRule
	if err := db.Where("vendor_id = ? AND active = ?", vendorID, true).First(&rule).Error; err != nil {
		return 0, nil
	}
	return tax.TDSAmount(amount, rule.RatePercentage), &rule.Id
}
