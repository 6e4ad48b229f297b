package controllers

import (
	"time"

	"billease-backend/cashflow"
	"billease-backend/database"
	"billease-backend/models"
	"billease-backend/reports"

	"github.com/gofiber/fiber/v2"
)

// buildForecast reconstructs ledger history and projects it forward with
// the caller's assumptions. Pure recompute on every request; the
// assumptions live only in the query string.
func buildForecast(c *fiber.Ctx) (cashflow.History, []cashflow.Month, error) {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return cashflow.History{}, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var invoices []models.Invoice
	db.Where("status = ?", models.InvoiceStatusPaid).Find(&invoices)

	var entries []models.JournalEntry
	db.Preload("Lines").Find(&entries)

	var accounts []models.Account
	db.Find(&accounts)

	now := time.Now().UTC()
	history := cashflow.BuildHistory(now, invoices, entries, accounts)
	assumptions := cashflow.Assumptions{
		GrowthRate:      c.QueryFloat("growth", 0),
		ExpenseIncrease: c.QueryFloat("expense_increase", 0),
		ForecastMonths:  c.QueryInt("months", 3),
	}
	forecast := cashflow.Forecast(history, assumptions, now)
	return history, forecast, nil
}

func GetCashFlowForecast(c *fiber.Ctx) error {
	history, forecast, err := buildForecast(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"history":  history,
		"forecast": forecast,
	})
}

func ExportCashFlowCSV(c *fiber.Ctx) error {
	history, forecast, err := buildForecast(c)
	if err != nil {
		return err
	}
	out, err := reports.CashFlowCSV(history.Months, forecast)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cashflow.csv"`)
	return c.Send(out)
}
