package routes

import (
	"github.com/gofiber/fiber/v2"

	"billease-backend/controllers"
	"billease-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public onboarding/auth endpoints
	api.Post("/license/validate", controllers.ValidateLicense)
	api.Post("/license/issue", controllers.IssueLicense) // admin-key guarded
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request tenant transaction (pins search_path and commits/rolls back)
	protected.Use(middlewares.TenantTx())

	// Company profile
	protected.Get("/company", controllers.GetCompany)
	protected.Put("/company", controllers.UpdateCompany)

	// Clients
	protected.Post("/client", controllers.CreateClient)
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/client/:id", controllers.GetClient)
	protected.Put("/client/:id", controllers.UpdateClient)
	protected.Delete("/client/:id", controllers.DeleteClient)

	// Vendors
	protected.Post("/vendor", controllers.CreateVendor)
	protected.Get("/vendors", controllers.GetVendors)
	protected.Get("/vendor/:id", controllers.GetVendor)
	protected.Put("/vendor/:id", controllers.UpdateVendor)
	protected.Delete("/vendor/:id", controllers.DeleteVendor)

	// TDS rules
	protected.Post("/tds-rule", controllers.CreateTDSRule)
	protected.Get("/tds-rules", controllers.GetTDSRules)
	protected.Put("/tds-rule/:id", controllers.UpdateTDSRule)
	protected.Delete("/tds-rule/:id", controllers.DeleteTDSRule)
	protected.Post("/tds-preview", controllers.PreviewTDS)

	// Invoices
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Put("/invoice/:id", controllers.UpdateInvoice)
	protected.Put("/invoice/:id/status", controllers.UpdateInvoiceStatus)
	protected.Delete("/invoice/:id", controllers.DeleteInvoice)
	protected.Get("/invoice/:id/pdf", controllers.ExportInvoicePDF)

	// Quotations
	protected.Post("/quotation", controllers.CreateQuotation)
	protected.Get("/quotations", controllers.GetQuotations)
	protected.Get("/quotation/:id", controllers.GetQuotation)
	protected.Put("/quotation/:id/status", controllers.UpdateQuotationStatus)
	protected.Put("/quotation/:id/convert", controllers.ConvertQuotation)
	protected.Get("/quotation/:id/versions", controllers.GetQuotationVersions)

	// Expenses
	protected.Post("/expense", controllers.CreateExpense)
	protected.Get("/expenses", controllers.GetExpenses)
	protected.Get("/expense/:id", controllers.GetExpense)
	protected.Put("/expense/:id", controllers.UpdateExpense)
	protected.Put("/expense/:id/status", controllers.UpdateExpenseStatus)
	protected.Delete("/expense/:id", controllers.DeleteExpense)

	// Ledger
	protected.Post("/account", controllers.CreateAccount)
	protected.Get("/accounts", controllers.GetAccounts)
	protected.Put("/account/:id", controllers.UpdateAccount)
	protected.Post("/journal-entry", controllers.CreateJournalEntry)
	protected.Get("/journal-entries", controllers.GetJournalEntries)
	protected.Delete("/journal-entry/:id", controllers.DeleteJournalEntry)

	// GST-3B (derived, recomputed per request)
	protected.Get("/gst3b", controllers.GetGST3B)
	protected.Get("/gst3b/csv", controllers.ExportGST3BCSV)
	protected.Get("/gst3b/pdf", controllers.ExportGST3BPDF)

	// Cash flow
	protected.Get("/cashflow/forecast", controllers.GetCashFlowForecast)
	protected.Get("/cashflow/csv", controllers.ExportCashFlowCSV)

	// Registers
	protected.Get("/reports/invoices.csv", controllers.ExportInvoiceRegisterCSV)
	protected.Get("/reports/expenses.csv", controllers.ExportExpenseRegisterCSV)
}
