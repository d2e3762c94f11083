package models

import "github.com/shopspring/decimal"

// Expense mirrors the finance.expenses table. The row total is always
// derived in queries as unit_price * quantity, never stored.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"` // nullable
	StoreName     *string         `json:"storeName"`   // nullable
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	ModeOfPayment string          `json:"modeOfPayment"`
}
