package controllers

import (
	"math"
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type accountInput struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	Role string `json:"role" validate:"required"`
}

func CreateAccount(c *fiber.Ctx) error {
	var in accountInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	role := models.AccountRole(in.Role)
	if !models.ValidRole(role) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown account role")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	account := models.Account{
		Name:   in.Name,
		Type:   in.Type,
		Role:   role,
		Active: true,
	}
	if err := db.Create(&account).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create account")
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func GetAccounts(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Order("name")
	if r := c.Query("role"); r != "" {
		q = q.Where("role = ?", r)
	}
	var accounts []models.Account
	q.Find(&accounts)
	return c.JSON(fiber.Map{"accounts": accounts})
}

func UpdateAccount(c *fiber.Ctx) error {
	var in accountInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	role := models.AccountRole(in.Role)
	if !models.ValidRole(role) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown account role")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var account models.Account
	if err := db.First(&account, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "account not found")
		}
		return err
	}

	account.Name = in.Name
	account.Type = in.Type
	account.Role = role
	if err := db.Save(&account).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update account")
	}
	return c.JSON(account)
}

type journalLineInput struct {
	AccountId uint    `json:"account_id" validate:"required"`
	Debit     float64 `json:"debit" validate:"gte=0"`
	Credit    float64 `json:"credit" validate:"gte=0"`
}

type journalEntryInput struct {
	EntryDate time.Time          `json:"entry_date"`
	Narration string             `json:"narration"`
	Lines     []journalLineInput `json:"lines" validate:"required,min=2,dive"`
}

// CreateJournalEntry records a balanced financial event. Entries whose
// debits and credits disagree (beyond rounding) are rejected outright.
func CreateJournalEntry(c *fiber.Ctx) error {
	var in journalEntryInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.EntryDate.IsZero() {
		in.EntryDate = time.Now().UTC()
	}

	var debits, credits float64
	for _, l := range in.Lines {
		debits += l.Debit
		credits += l.Credit
	}
	if math.Abs(utils.Round2(debits)-utils.Round2(credits)) > 0.005 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "journal entry does not balance")
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	entry := models.JournalEntry{
		EntryDate: in.EntryDate,
		Narration: in.Narration,
	}
	for _, l := range in.Lines {
		var account models.Account
		if err := db.First(&account, "id = ?", l.AccountId).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "account not found")
		}
		entry.Lines = append(entry.Lines, models.JournalLine{
			AccountId: l.AccountId,
			Debit:     utils.Round2(l.Debit),
			Credit:    utils.Round2(l.Credit),
		})
	}

	if err := db.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create journal entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func GetJournalEntries(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var entries []models.JournalEntry
	db.Preload("Lines").Order("entry_date DESC").Find(&entries)
	return c.JSON(fiber.Map{"entries": entries})
}

func DeleteJournalEntry(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.JournalEntry{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete journal entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "journal entry not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
