package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnnualRecord mirrors the finance.annual_record table. Rows are written
// once per academic year and frozen afterwards.
type AnnualRecord struct {
	RecordID      int64           `json:"recordID"`
	StartingDate  time.Time       `json:"startingDate"`
	EndingDate    time.Time       `json:"endingDate"`
	StartingMoney decimal.Decimal `json:"startingMoney"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
