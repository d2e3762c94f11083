package mapping

import (
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/SscSPs/org_finance_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		ProjectID:     d.ProjectID,
		Name:          d.Name,
		Description:   nullableString(d.Description),
		StoreName:     nullableString(d.StoreName),
		UnitPrice:     d.UnitPrice,
		Quantity:      d.Quantity,
		ModeOfPayment: d.ModeOfPayment,
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Description:   stringOrEmpty(m.Description),
		StoreName:     stringOrEmpty(m.StoreName),
		UnitPrice:     m.UnitPrice,
		Quantity:      m.Quantity,
		ModeOfPayment: m.ModeOfPayment,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
