package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnnualRecord is the frozen snapshot of one academic year: the balance
// carried into it plus the year's totals. Records are created once on first
// access and never updated or deleted afterwards.
type AnnualRecord struct {
	RecordID      int64           `json:"recordID"` // AcademicYear.Key(), e.g. 20242025
	StartingDate  time.Time       `json:"startingDate"`
	EndingDate    time.Time       `json:"endingDate"`
	StartingMoney decimal.Decimal `json:"startingMoney"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// ClosingBalance is the starting money plus the year's net income. It becomes
// the next year's starting money.
func (r AnnualRecord) ClosingBalance() decimal.Decimal {
	return r.StartingMoney.Add(r.TotalRevenue).Sub(r.TotalExpenses)
}
