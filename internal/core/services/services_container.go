package services

import (
	portsrepo "github.com/SscSPs/org_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The annual record service comes first since reporting needs it for the
	// carried balance.
	container.AnnualRecord = NewAnnualRecordService(repos.AnnualRecordRepo, repos.ReportingRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.AnnualRecord)
	container.Project = NewProjectService(repos.ProjectRepo)

	return container
}
