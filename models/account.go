package models

import "time"

// AccountRole classifies a ledger account into the fixed set the cash-flow
// forecaster cares about. The role is required at creation; nothing is ever
// inferred from free-text account names.
type AccountRole string

const (
	RoleCash       AccountRole = "cash"
	RoleBank       AccountRole = "bank"
	RoleReceivable AccountRole = "receivable"
	RolePayable    AccountRole = "payable"
	RoleIncome     AccountRole = "income"
	RoleExpense    AccountRole = "expense"
	RoleOther      AccountRole = "other"
)

// ValidRole reports whether r is one of the defined account roles.
func ValidRole(r AccountRole) bool {
	switch r {
	case RoleCash, RoleBank, RoleReceivable, RolePayable, RoleIncome, RoleExpense, RoleOther:
		return true
	}
	return false
}

// Account is a ledger account. Type is the accounting classification
// (asset/liability/income/expense), Role drives cash-flow classification.
type Account struct {
	Id        uint        `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" gorm:"not null;unique"`
	Type      string      `json:"type" gorm:"not null"`
	Role      AccountRole `json:"role" gorm:"type:VARCHAR(20);not null;index"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

// JournalEntry is a balanced financial event; the write path rejects
// entries whose lines do not satisfy sum(debit) == sum(credit).
type JournalEntry struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	EntryDate time.Time     `json:"entry_date" gorm:"index"`
	Narration string        `json:"narration"`
	Lines     []JournalLine `json:"lines" gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `json:"created_at"`
}

type JournalLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	EntryID   uint    `json:"-" gorm:"index"`
	AccountId uint    `json:"account_id" gorm:"not null;index"`
	Account   Account `json:"-" gorm:"foreignKey:AccountId;references:Id"`
	Debit     float64 `json:"debit" gorm:"type:numeric(12,2)"`
	Credit    float64 `json:"credit" gorm:"type:numeric(12,2)"`
}
