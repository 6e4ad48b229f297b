package controllers

import (
	"encoding/json"
	"time"

	"billease-backend/database"
	"billease-backend/middlewares"
	"billease-backend/models"
	"billease-backend/tax"
	"billease-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type quotationInput struct {
	QuotationNumber string             `json:"quotation_number" validate:"required"`
	ClientId        uint               `json:"client_id" validate:"required"`
	GSTRate         float64            `json:"gst_rate" validate:"gte=0"`
	Discount        float64            `json:"discount" validate:"gte=0"`
	QuoteDate       time.Time          `json:"quote_date"`
	ValidTill       time.Time          `json:"valid_till"`
	Items           []invoiceItemInput `json:"items" validate:"required,min=1,dive"`
}

func buildQuotation(in quotationInput) models.Quotation {
	var amount float64
	items := make([]models.QuotationItem, 0, len(in.Items))
	for _, it := range in.Items {
		lineAmount := utils.Round2(it.Quantity * it.Rate)
		amount = utils.Round2(amount + lineAmount)
		items = append(items, models.QuotationItem{
			Description: it.Description,
			HSNSAC:      it.HSNSAC,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      lineAmount,
		})
	}

	// Quotations always quote the intrastate split; the definitive split is
	// computed at conversion time against the client's GSTIN.
	split := tax.ComputeSplit(amount, in.GSTRate, false)
	return models.Quotation{
		QuotationNumber: in.QuotationNumber,
		ClientId:        in.ClientId,
		Items:           items,
		Amount:          amount,
		GSTRate:         in.GSTRate,
		GSTAmount:       split.GSTAmount,
		Discount:        in.Discount,
		Total:           utils.Round2(amount + split.GSTAmount - in.Discount),
		Status:          models.QuotationStatusDraft,
		QuoteDate:       in.QuoteDate,
		ValidTill:       in.ValidTill,
	}
}

func CreateQuotation(c *fiber.Ctx) error {
	var in quotationInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	if in.QuoteDate.IsZero() {
		in.QuoteDate = time.Now().UTC()
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var client models.Client
	if err := db.First(&client, "id = ?", in.ClientId).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "client not found")
	}

	quotation := buildQuotation(in)
	if err := db.Create(&quotation).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create quotation")
	}
	quotation.Client = client
	return c.Status(fiber.StatusCreated).JSON(quotation)
}

func GetQuotations(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var quotations []models.Quotation
	db.Preload("Items").Preload("Client").Order("quote_date DESC").Find(&quotations)
	return c.JSON(fiber.Map{"quotations": quotations})
}

func GetQuotation(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var quotation models.Quotation
	if err := db.Preload("Items").Preload("Client").First(&quotation, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "quotation not found")
		}
		return err
	}
	return c.JSON(quotation)
}

type quotationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=draft sent accepted rejected"`
}

func UpdateQuotationStatus(c *fiber.Ctx) error {
	var in quotationStatusInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var quotation models.Quotation
	if err := db.First(&quotation, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "quotation not found")
		}
		return err
	}
	if quotation.InvoiceID != nil {
		return fiber.NewError(fiber.StatusConflict, "quotation already converted")
	}

	if in.Status == models.QuotationStatusSent && quotation.Status == models.QuotationStatusDraft {
		if err := snapshotQuotation(db, &quotation, "sent"); err != nil {
			return err
		}
	}
	quotation.Status = in.Status
	if err := db.Save(&quotation).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not update status")
	}
	return c.JSON(quotation)
}

type quotationConvertInput struct {
	InvoiceNumber string    `json:"invoice_number" validate:"required"`
	DueDate       time.Time `json:"due_date"`
}

// ConvertQuotation turns an accepted quotation into a pending invoice. The
// quotation is snapshotted first and the GST split is recomputed against
// the client's GSTIN, since place of supply is decided at invoicing time.
func ConvertQuotation(c *fiber.Ctx) error {
	var in quotationConvertInput
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

	var quotation models.Quotation
	if err := db.Preload("Items").Preload("Client").First(&quotation, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "quotation not found")
		}
		return err
	}
	if quotation.InvoiceID != nil {
		return fiber.NewError(fiber.StatusConflict, "quotation already converted")
	}
	if quotation.Status != models.QuotationStatusAccepted {
		return fiber.NewError(fiber.StatusConflict, "only accepted quotations can be converted")
	}

	if err := snapshotQuotation(db, &quotation, "converted"); err != nil {
		return err
	}

	split := tax.ComputeSplit(quotation.Amount, quotation.GSTRate,
		tax.Interstate(company.GSTIN, quotation.Client.GSTIN))
	invoice := models.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		ClientId:      quotation.ClientId,
		Amount:        quotation.Amount,
		GSTRate:       quotation.GSTRate,
		GSTAmount:     split.GSTAmount,
		CGST:          split.CGST,
		SGST:          split.SGST,
		IGST:          split.IGST,
		Discount:      quotation.Discount,
		Total:         tax.InvoiceTotal(quotation.Amount, split.GSTAmount, quotation.Discount, 0, 0),
		Status:        models.InvoiceStatusPending,
		InvoiceDate:   time.Now().UTC(),
		DueDate:       in.DueDate,
	}
	for _, it := range quotation.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: it.Description,
			HSNSAC:      it.HSNSAC,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}

	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not create invoice from quotation")
	}

	quotation.InvoiceID = &invoice.ID
	if err := db.Save(&quotation).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not link quotation to invoice")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// snapshotQuotation stores an immutable JSONB copy with the next version
// number for this quotation.
func snapshotQuotation(db *gorm.DB, q *models.Quotation, kind string) error {
	blob, err := json.Marshal(q)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot quotation")
	}

	var maxNo int
	db.Model(&models.QuotationVersion{}).Where("quotation_id = ?", q.ID).
		Select("COALESCE(MAX(version_no), 0)").Scan(&maxNo)

	version := models.QuotationVersion{
		QuotationID: q.ID,
		VersionNo:   maxNo + 1,
		Kind:        kind,
		Snapshot:    blob,
	}
	if err := db.Create(&version).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not store quotation version")
	}
	return nil
}

func GetQuotationVersions(c *fiber.Ctx) error {
	db, err := database.GetTenantDB(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var versions []models.QuotationVersion
	db.Where("quotation_id = ?", c.Params("id")).Order("version_no").Find(&versions)
	return c.JSON(fiber.Map{"versions": versions})
}
