package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue is money received for a project. Only revenue belonging to a
// completed project counts toward realized revenue aggregates.
type Revenue struct {
	RevenueID     string          `json:"revenueID"`
	ProjectID     string          `json:"projectID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	ModeOfPayment string          `json:"modeOfPayment"`
	Date          time.Time       `json:"date"`
}
