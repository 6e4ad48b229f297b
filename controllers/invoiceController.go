package controllers

import (
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/tax"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentCompany loads the authenticated tenant's business profile from
// the public schema.
func currentCompany(c *fiber.Ctx) (models.Company, error) {
	userID, _ := c.Locals("userID").(string)
	var company models.Company
	if err := database.DB.Table("public.companies").Where("user_id = ?", userID).First(&company).Error; err != nil {
		return company, fiber.NewError(fiber.StatusInternalServerError, "company profile missing")
	}
	return company, nil
}

type invoiceItemInput struct {
	Description string  `json:"description" validate:"required"`
	HSNSAC      string  `json:"hsn_sac"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

type invoiceInput struct {
	InvoiceNumber string             `json:"invoice_number" validate:"required"`
	ClientId      uint               `json:"client_id" validate:"required"`
	GSTRate       float64            `json:"gst_rate" validate:"gte=0"`
	Discount      float64            `json:"discount" validate:"gte=0"`
	Advance       float64            `json:"advance" validate:"gte=0"`
	Roundoff      float64            `json:"roundoff"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       time.Time          `json:"due_date"`
	Items         []invoiceItemInput `json:"items" validate:"required,min=1,dive"`
}

// buildInvoice computes every derived monetary field from the raw input:
// item amounts, the GST split (place of supply from GSTIN state codes) and
// the document total identity.
func buildInvoice(in invoiceInput, client models.Client, sellerGSTIN string) models.Invoice {
	var amount float64
	items := make([]models.InvoiceItem, 0, len(in.Items))
	for _, it := range in.Items {
		lineAmount := utils.Round2(it.Quantity * it.Rate)
		amount = utils.Round2(amount + lineAmount)
		items = append(items, models.InvoiceItem{
			Description: it.Description,
			HSNSAC:      it.HSNSAC,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      lineAmount,
		})
	}

	split := tax.ComputeSplit(amount, in.GSTRate, tax.Interstate(sellerGSTIN, client.GSTIN))
	return models.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		ClientId:      client.Id,
		Items:         items,
		Amount:        amount,
		GSTRate:       in.GSTRate,
		GSTAmount:     split.GSTAmount,
		CGST:          split.CGST,
		SGST:          split.SGST,
		IGST:          split.IGST,
		Discount:      in.Discount,
		Advance:       in.Advance,
		Roundoff:      in.Roundoff,
		Total:         tax.InvoiceTotal(amount, split.GSTAmount, in.Discount, in.Advance, in.Roundoff),
		Status:        models.InvoiceStatusPending,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
	}
}

func CreateInvoice(c *fiber.Ctx) error {
	var in invoiceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.InvoiceDate.IsZero() {
		in.InvoiceDate = time.Now().UTC()
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	company, err := currentCompany(c)
	if err != nil {
		return err
	}

	var client models.Client
	if err := db.First(&client, "id = ?", in.ClientId).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "client not found")
	}

	invoice := buildInvoice(in, client, company.GSTIN)
	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice")
	}
	invoice.Client = client
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func GetInvoices(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	q := db.Preload("Items").Preload("Client").Order("invoice_date DESC")
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}
	limit := utils.ParseIntDefault(c.Query("limit"), 100)
	offset := utils.ParseIntDefault(c.Query("offset"), 0)
	var invoices []models.Invoice
	q.Limit(limit).Offset(offset).Find(&invoices)
	return c.JSON(fiber.Map{"invoices": invoices})
}

func GetInvoice(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var invoice models.Invoice
	if err := db.Preload("Items").Preload("Client").First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}
	return c.JSON(invoice)
}

// UpdateInvoice replaces the document contents and recomputes all derived
// fields. Status is managed separately via UpdateInvoiceStatus.
func UpdateInvoice(c *fiber.Ctx) error {
	var in invoiceInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	company, err := currentCompany(c)
	if err != nil {
		return err
	}

	var existing models.Invoice
	if err := db.First(&existing, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}

	var client models.Client
	if err := db.First(&client, "id = ?", in.ClientId).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "client not found")
	}
	if in.InvoiceDate.IsZero() {
		in.InvoiceDate = existing.InvoiceDate
	}

	invoice := buildInvoice(in, client, company.GSTIN)
	invoice.ID = existing.ID
	invoice.Status = existing.Status
	invoice.PaidAt = existing.PaidAt
	invoice.CreatedAt = existing.CreatedAt

	// Replace items wholesale; partial item edits are not supported.
	if err := db.Where("invoice_id = ?", existing.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update invoice items")
	}
	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update invoice")
	}
	invoice.Client = client
	return c.JSON(invoice)
}

type invoiceStatusInput struct {
	Status string `json:"status" validate:"required,oneof=paid pending overdue"`
}

// UpdateInvoiceStatus transitions paid/pending/overdue. Marking paid stamps
// PaidAt; leaving paid clears it, which also removes the invoice from
// GST-3B and cash-flow aggregates on their next recompute.
func UpdateInvoiceStatus(c *fiber.Ctx) error {
	var in invoiceStatusInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return err
	}

	invoice.Status = in.Status
	if in.Status == models.InvoiceStatusPaid {
		if invoice.PaidAt == nil {
			now := time.Now().UTC()
			invoice.PaidAt = &now
		}
	} else {
		invoice.PaidAt = nil
	}
	if err := db.Save(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update status")
	}
	return c.JSON(invoice)
}

func DeleteInvoice(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	res := db.Delete(&models.Invoice{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not delete invoice")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(fiber.Map{"message": "success"})
}
