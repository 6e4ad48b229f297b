package models

import "time"

// Invoice status values. Only paid invoices count as supplied for GST-3B.
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is the live state of a sales document.
//
// Monetary identity, enforced on every write:
//
//	TotalAmount = Amount + GSTAmount - Discount - Advance + Roundoff
//
// Downstream aggregation (GST-3B, cash flow) trusts the stored totals
// because the write path recomputes them from components.
type Invoice struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	InvoiceNumber string `json:"invoice_number" gorm:"unique;not null"`
	ClientId      uint   `json:"client_id"`
	Client        Client `json:"client" gorm:"foreignKey:ClientId;references:Id"`

	Items []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	Amount    float64 `json:"amount" gorm:"type:numeric(12,2)"` // pre-tax
	GSTRate   float64 `json:"gst_rate"`
	GSTAmount float64 `json:"gst_amount" gorm:"type:numeric(12,2)"`
	CGST      float64 `json:"cgst" gorm:"type:numeric(12,2)"`
	SGST      float64 `json:"sgst" gorm:"type:numeric(12,2)"`
	IGST      float64 `json:"igst" gorm:"type:numeric(12,2)"`
	Discount  float64 `json:"discount" gorm:"type:numeric(12,2)"`
	Advance   float64 `json:"advance" gorm:"type:numeric(12,2)"`
	Roundoff  float64 `json:"roundoff" gorm:"type:numeric(12,2)"`
	Total     float64 `json:"total_amount" gorm:"column:total_amount;type:numeric(12,2)"`

	Status      string     `json:"status" gorm:"type:VARCHAR(20);default:pending;index"`
	InvoiceDate time.Time  `json:"invoice_date" gorm:"index"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
}

type InvoiceItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	InvoiceID   uint    `json:"-" gorm:"index"`
	Description string  `json:"description" gorm:"not null"`
	HSNSAC      string  `json:"hsn_sac"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate" gorm:"type:numeric(12,2)"`
	Amount      float64 `json:"amount" gorm:"type:numeric(12,2)"` // quantity * rate
}
