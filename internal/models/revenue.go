package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue mirrors the finance.revenue table.
type Revenue struct {
	RevenueID     string          `json:"revenueID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"` // nullable
	Amount        decimal.Decimal `json:"amount"`
	ModeOfPayment string          `json:"modeOfPayment"`
	Date          time.Time       `json:"date"`
}
