package domain

import "github.com/shopspring/decimal"

// Expense is a single purchase line belonging to a project.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StoreName     string          `json:"storeName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	ModeOfPayment string          `json:"modeOfPayment"`
}

// Total is the derived expense amount. It is always recomputed from
// unit price and quantity, never stored.
func (e Expense) Total() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
}
