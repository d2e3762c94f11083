package mapping

import (
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/SscSPs/org_finance_app/internal/models"
)

// ToModelAnnualRecord converts a domain AnnualRecord to a model AnnualRecord
func ToModelAnnualRecord(d domain.AnnualRecord) models.AnnualRecord {
	return models.AnnualRecord{
		RecordID:      d.RecordID,
		StartingDate:  d.StartingDate,
		EndingDate:    d.EndingDate,
		StartingMoney: d.StartingMoney,
		TotalExpenses: d.TotalExpenses,
		TotalRevenue:  d.TotalRevenue,
	}
}

// ToDomainAnnualRecord converts a model AnnualRecord to a domain AnnualRecord
func ToDomainAnnualRecord(m models.AnnualRecord) domain.AnnualRecord {
	return domain.AnnualRecord{
		RecordID:      m.RecordID,
		StartingDate:  m.StartingDate,
		EndingDate:    m.EndingDate,
		StartingMoney: m.StartingMoney,
		TotalExpenses: m.TotalExpenses,
		TotalRevenue:  m.TotalRevenue,
	}
}
