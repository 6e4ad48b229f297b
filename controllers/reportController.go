package controllers

import (
	"billease-backend/database"
	"billease-backend/models"
	"billease-backend/reports"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExportInvoicePDF renders a single invoice as a printable document with
// the tenant's letterhead and bank details.
func ExportInvoicePDF(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	company, err := currentCompany(c)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Preload("Items").Preload("Client").First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}

	out, err := reports.InvoicePDF(company, invoice)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+invoice.InvoiceNumber+`.pdf"`)
	return c.Send(out)
}

func ExportInvoiceRegisterCSV(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Preload("Client").Order("invoice_date")
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}
	var invoices []models.Invoice
	q.Find(&invoices)

	out, err := reports.InvoiceRegisterCSV(invoices)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoices.csv"`)
	return c.Send(out)
}

func ExportExpenseRegisterCSV(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Preload("Vendor").Order("expense_date")
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}
	var expenses []models.Expense
	q.Find(&expenses)

	out, err := reports.ExpenseRegisterCSV(expenses)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Send(out)
}
