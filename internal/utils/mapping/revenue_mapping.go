package mapping

import (
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/SscSPs/org_finance_app/internal/models"
)

// ToModelRevenue converts a domain Revenue to a model Revenue
func ToModelRevenue(d domain.Revenue) models.Revenue {
	return models.Revenue{
		RevenueID:     d.RevenueID,
		ProjectID:     d.ProjectID,
		Name:          d.Name,
		Description:   nullableString(d.Description),
		Amount:        d.Amount,
		ModeOfPayment: d.ModeOfPayment,
		Date:          d.Date,
	}
}

// ToDomainRevenue converts a model Revenue to a domain Revenue
func ToDomainRevenue(m models.Revenue) domain.Revenue {
	return domain.Revenue{
		RevenueID:     m.RevenueID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Description:   stringOrEmpty(m.Description),
		Amount:        m.Amount,
		ModeOfPayment: m.ModeOfPayment,
		Date:          m.Date,
	}
}

// ToDomainRevenueSlice converts a slice of model Revenue rows to domain Revenue
func ToDomainRevenueSlice(ms []models.Revenue) []domain.Revenue {
	ds := make([]domain.Revenue, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevenue(m)
	}
	return ds
}
