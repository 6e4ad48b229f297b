package controllers

import (
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type expenseInput struct {
	VendorId    uint      `json:"vendor_id" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	TaxAmount   float64   `json:"tax_amount" validate:"gte=0"`
	PaymentMode string    `json:"payment_mode"`
	ExpenseDate time.Time `json:"expense_date"`
	Notes       string    `json:"notes"`
}

// buildExpense derives the withholding and total from the raw input. The
// TDS amount is recomputed every time amount or vendor changes.
func buildExpense(db *gorm.DB, in expenseInput) models.Expense {
	tds, ruleID := vendorTDS(db, in.VendorId, in.Amount)
	return models.Expense{
		VendorId:    in.VendorId,
		Category:    in.Category,
		Amount:      in.Amount,
		TaxAmount:   in.TaxAmount,
		TDSAmount:   tds,
		TDSRuleId:   ruleID,
		Total:       utils.Round2(in.Amount + in.TaxAmount),
		PaymentMode: in.PaymentMode,
		ExpenseDate: in.ExpenseDate,
		Notes:       in.Notes,
		Status:      models.ExpenseStatusPending,
	}
}

func CreateExpense(c *fiber.Ctx) error {
	var in expenseInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.ExpenseDate.IsZero() {
		in.ExpenseDate = time.Now().UTC()
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var vendor models.Vendor
	if err := db.First(&vendor, "id = ?", in.VendorId).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
	}

	expense := buildExpense(db, in)
	if err := db.Create(&expense).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create expense")
	}
	expense.Vendor = vendor
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func GetExpenses(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Preload("Vendor").Order("expense_date DESC")
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	limit := utils.ParseIntDefault(c.Query("limit"), 100)
	offset := utils.ParseIntDefault(c.Query("offset"), 0)
	var expenses []models.Expense
	q.Limit(limit).Offset(offset).Find(&expenses)
	return c.JSON(fiber.Map{"expenses": expenses})
}

func GetExpense(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var expense models.Expense
	if err := db.Preload("Vendor").First(&expense, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return err
	}
	return c.JSON(expense)
}

func UpdateExpense(c *fiber.Ctx) error {
	var in expenseInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var existing models.Expense
	if err := db.First(&existing, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return err
	}
	if existing.Status == models.ExpenseStatusPosted {
		return fiber.NewError(fiber.StatusConflict, "posted expenses cannot be edited")
	}
	if in.ExpenseDate.IsZero() {
		in.ExpenseDate = existing.ExpenseDate
	}

	expense := buildExpense(db, in)
	expense.ID = existing.ID
	expense.Status = existing.Status
	expense.CreatedAt = existing.CreatedAt
	if err := db.Save(&expense).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update expense")
	}
	return c.JSON(expense)
}

type expenseStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected posted"`
}

// UpdateExpenseStatus walks the approval flow. Posting requires prior
// approval; posted expenses are terminal.
func UpdateExpenseStatus(c *fiber.Ctx) error {
	var in expenseStatusInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var expense models.Expense
	if err := db.First(&expense, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return err
	}
	if expense.Status == models.ExpenseStatusPosted {
		return fiber.NewError(fiber.StatusConflict, "posted expenses cannot change status")
	}
	if in.Status == models.ExpenseStatusPosted && expense.Status != models.ExpenseStatusApproved {
		return fiber.NewError(fiber.StatusConflict, "only approved expenses can be posted")
	}

	expense.Status = in.Status
	if err := db.Save(&expense).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update status")
	}
	return c.JSON(expense)
}

func DeleteExpense(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.Expense{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete expense")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
