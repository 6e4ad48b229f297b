package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quotation status values.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// Quotation shares the invoice's monetary shape and can be converted into
// an invoice once accepted. Conversion snapshots the quotation first.
type Quotation struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	QuotationNumber string `json:"quotation_number" gorm:"unique;not null"`
	ClientId        uint   `json:"client_id"`
	Client          Client `json:"client" gorm:"foreignKey:ClientId;references:Id"`

	Items []QuotationItem `json:"items" gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`

	Amount    float64 `json:"amount" gorm:"type:numeric(12,2)"`
	GSTRate   float64 `json:"gst_rate"`
	GSTAmount float64 `json:"gst_amount" gorm:"type:numeric(12,2)"`
	Discount  float64 `json:"discount" gorm:"type:numeric(12,2)"`
	Total     float64 `json:"total_amount" gorm:"column:total_amount;type:numeric(12,2)"`

	Status    string     `json:"status" gorm:"type:VARCHAR(20);default:draft"`
	QuoteDate time.Time  `json:"quote_date"`
	ValidTill time.Time  `json:"valid_till"`
	InvoiceID *uint      `json:"invoice_id"` // set once converted
	CreatedAt time.Time  `json:"created_at"`
}

type QuotationItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	QuotationID uint    `json:"-" gorm:"index"`
	Description string  `json:"description" gorm:"not null"`
	HSNSAC      string  `json:"hsn_sac"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate" gorm:"type:numeric(12,2)"`
	Amount      float64 `json:"amount" gorm:"type:numeric(12,2)"`
}

// QuotationVersion is an immutable snapshot taken when a quotation is sent
// or converted, so the document trail survives later edits.
type QuotationVersion struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	QuotationID uint           `json:"quotation_id" gorm:"index:idx_quotation_versions_quotation_id_version_no,unique,priority:1"`
	VersionNo   int            `json:"version_no" gorm:"not null;index:idx_quotation_versions_quotation_id_version_no,unique,priority:2"`
	Kind        string         `json:"kind" gorm:"type:VARCHAR(20)"` // "sent" | "converted"
	Snapshot    datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at"`
}
