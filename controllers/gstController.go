package controllers

import (
	"time"

	"billease-backend/database"
	"billease-backend/models"
	"billease-backend/reports"
	"billease-backend/tax"

	"github.com/gofiber/fiber/v2"
)

// gstPeriod resolves ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to the
// current calendar month.
func gstPeriod(c *fiber.Ctx) (tax.Period, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return tax.Period{}, fiber.NewError(fiber.StatusBadRequest, "invalid from date")
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return tax.Period{}, fiber.NewError(fiber.StatusBadRequest, "invalid to date")
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}
	return tax.Period{From: from, To: to}, nil
}

// buildReturn recomputes the GST-3B aggregate from current invoice data.
// Nothing is cached or persisted; every request reflects the latest edits.
func buildReturn(c *fiber.Ctx) (tax.Return, models.Company, error) {
	period, err := gstPeriod(c)
	if err != nil {
		return tax.Return{}, models.Company{}, err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return tax.Return{}, models.Company{}, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	company, err := currentCompany(c)
	if err != nil {
		return tax.Return{}, models.Company{}, err
	}

	var invoices []models.Invoice
	db.Preload("Client").
		Where("status = ? AND invoice_date BETWEEN ? AND ?", models.InvoiceStatusPaid, period.From, period.To).
		Find(&invoices)

	return tax.BuildGST3B(invoices, company.GSTIN, period), company, nil
}

func GetGST3B(c *fiber.Ctx) error {
	ret, _, err := buildReturn(c)
	if err != nil {
		return err
	}
	return c.JSON(ret)
}

func ExportGST3BCSV(c *fiber.Ctx) error {
	ret, _, err := buildReturn(c)
	if err != nil {
		return err
	}
	out, err := reports.GST3BCSV(ret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="gstr3b-`+ret.Period+`.csv"`)
	return c.Send(out)
}

func ExportGST3BPDF(c *fiber.Ctx) error {
	ret, company, err := buildReturn(c)
	if err != nil {
		return err
	}
	out, err := reports.GST3BPDF(company, ret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="gstr3b-`+ret.Period+`.pdf"`)
	return c.Send(out)
}
