package models

import "time"

// Expense status values.
const (
	ExpenseStatusPending  = "pending"
	ExpenseStatusApproved = "approved"
	ExpenseStatusRejected = "rejected"
	ExpenseStatusPosted   = "posted"
)

// Expense records a purchase or payment to a vendor. TDSAmount is derived
// from the vendor's active TDS rule whenever amount or vendor changes;
// vendors without a rule get zero and no rule reference.
type Expense struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	VendorId uint   `json:"vendor_id" gorm:"index"`
	Vendor   Vendor `json:"vendor" gorm:"foreignKey:VendorId;references:Id"`

	Category  string  `json:"category" gorm:"not null"`
	Amount    float64 `json:"amount" gorm:"type:numeric(12,2)"`
	TaxAmount float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	TDSAmount float64 `json:"tds_amount" gorm:"type:numeric(12,2)"`
	TDSRuleId *uint   `json:"tds_rule_id"`
	Total     float64 `json:"total_amount" gorm:"column:total_amount;type:numeric(12,2)"` // amount + tax_amount

	PaymentMode string    `json:"payment_mode"`
	Status      string    `json:"status" gorm:"type:VARCHAR(20);default:pending;index"`
	ExpenseDate time.Time `json:"expense_date" gorm:"index"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
