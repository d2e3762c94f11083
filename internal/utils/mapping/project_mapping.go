package mapping

import (
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	"github.com/SscSPs/org_finance_app/internal/models"
)

// nullableString maps an empty string to NULL for optional text columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:          d.ProjectID,
		Name:               d.Name,
		Description:        nullableString(d.Description),
		ImplementationDate: d.ImplementationDate,
		SubmissionDate:     d.SubmissionDate,
		Status:             string(d.Status),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:          m.ProjectID,
		Name:               m.Name,
		Description:        stringOrEmpty(m.Description),
		ImplementationDate: m.ImplementationDate,
		SubmissionDate:     m.SubmissionDate,
		Status:             domain.ProjectStatus(m.Status),
	}
}
