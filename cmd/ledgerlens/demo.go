package main

import (
	"github.com/shopspring/decimal"

	"github.com/oakmoney/ledgerlens/internal/model"
)

// demoTransactions returns a representative month for each profile so the
// classify command is useful out of the box.
func demoTransactions(profile model.BusinessProfile) []model.Transaction {
	gbp := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	switch profile {
	case model.ProfileTrade:
		return []model.Transaction{
			{Date: "2025-03-01", Description: "Big Job Payment", Amount: gbp("10000"), Type: "Income"},
			{Date: "2025-03-03", Description: "Screwfix Direct", Amount: gbp("-450"), Type: "Expense"},
			{Date: "2025-03-05", Description: "Van Lease", Amount: gbp("-350"), Type: "Expense"},
			{Date: "2025-03-08", Description: "Shell Petrol", Amount: gbp("-80"), Type: "Expense"},
		}
	case model.ProfileRetail:
		return []model.Transaction{
			{Date: "2025-03-01", Description: "Daily Sales", Amount: gbp("7500"), Type: "Income"},
			{Date: "2025-03-02", Description: "Flour Wholesale", Amount: gbp("-2000"), Type: "Expense"},
		}
	default: // service
		return []model.Transaction{
			{Date: "2025-03-01", Description: "Client Project Fee", Amount: gbp("6800"), Type: "Income"},
			{Date: "2025-03-02", Description: "Starbucks", Amount: gbp("-4.50"), Type: "Expense"},
			{Date: "2025-03-06", Description: "Xero", Amount: gbp("-30"), Type: "Expense"},
		}
	}
}
