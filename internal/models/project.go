package models

import "time"

// Project mirrors the finance.projects table.
type Project struct {
	ProjectID          string    `json:"projectID"`
	Name               string    `json:"name"`
	Description        *string   `json:"description"` // nullable
	ImplementationDate time.Time `json:"implementationDate"`
	SubmissionDate     time.Time `json:"submissionDate"`
	Status             string    `json:"status"`
}
