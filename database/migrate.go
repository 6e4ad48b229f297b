package database

import (
	"fmt"

	"billease-backend/models"

	"gorm.io/gorm"
)

// MigrateTenantSchema applies (idempotent) schema migrations for a single tenant schema.
// It pins search_path to the tenant and performs:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (invoices by status/date, journal lines, quotation versions)
// - Basic CHECK constraints (non-negative money, balanced-entry support)
// - Idempotency keys table + unique index
func MigrateTenantSchema(schema string) error {
	if schema == "" {
		return fmt.Errorf("schema name is empty")
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		// Pin the tenant schema for this transaction
		if err := tx.Exec(`SET search_path = "` + schema + `", public`).Error; err != nil {
			return fmt.Errorf("set search_path failed: %w", err)
		}

		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.Client{},
			&models.Vendor{},
			&models.TDSRule{},
			&models.Invoice{},
			&models.InvoiceItem{},
			&models.Quotation{},
			&models.QuotationItem{},
			&models.QuotationVersion{},
			&models.Expense{},
			&models.Account{},
			&models.JournalEntry{},
			&models.JournalLine{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("tenant automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE invoices        ALTER COLUMN amount       TYPE numeric(12,2)`,
			`ALTER TABLE invoices        ALTER COLUMN gst_amount   TYPE numeric(12,2)`,
			`ALTER TABLE invoices        ALTER COLUMN total_amount TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items   ALTER COLUMN rate         TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items   ALTER COLUMN amount       TYPE numeric(12,2)`,
			`ALTER TABLE quotations      ALTER COLUMN amount       TYPE numeric(12,2)`,
			`ALTER TABLE quotations      ALTER COLUMN total_amount TYPE numeric(12,2)`,
			`ALTER TABLE expenses        ALTER COLUMN amount       TYPE numeric(12,2)`,
			`ALTER TABLE expenses        ALTER COLUMN tax_amount   TYPE numeric(12,2)`,
			`ALTER TABLE expenses        ALTER COLUMN tds_amount   TYPE numeric(12,2)`,
			`ALTER TABLE expenses        ALTER COLUMN total_amount TYPE numeric(12,2)`,
			`ALTER TABLE journal_lines   ALTER COLUMN debit        TYPE numeric(12,2)`,
			`ALTER TABLE journal_lines   ALTER COLUMN credit       TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_invoices_status_date ON invoices (status, invoice_date)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_status_date ON expenses (status, expense_date)`,
			`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id)`,
			`CREATE INDEX IF NOT EXISTS idx_journal_lines_entry ON journal_lines (entry_id)`,
			`CREATE INDEX IF NOT EXISTS idx_journal_lines_account ON journal_lines (account_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_quotation_versions_quotation_id_version_no ON quotation_versions (quotation_id, version_no)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_amount_nonneg'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'expenses'::regclass
					  AND conname  = 'chk_expenses_amount_nonneg'
				) THEN
					ALTER TABLE expenses
					ADD CONSTRAINT chk_expenses_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'journal_lines'::regclass
					  AND conname  = 'chk_journal_lines_nonneg'
				) THEN
					ALTER TABLE journal_lines
					ADD CONSTRAINT chk_journal_lines_nonneg
					CHECK (debit >= 0 AND credit >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
