package models

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
	StatusDisbursed   ApplicationStatus = "disbursed"
	StatusCompleted   ApplicationStatus = "completed"
)

// ApplicationStatuses lists all statuses in lifecycle order.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusUnderReview,
	StatusApproved,
	StatusRejected,
	StatusDisbursed,
	StatusCompleted,
}

// ApprovedStatuses are the statuses of applications that have passed
// the approval gate.
var ApprovedStatuses = []ApplicationStatus{
	StatusApproved,
	StatusDisbursed,
	StatusCompleted,
}

// ParseApplicationStatus returns the status for a string.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%q is not a valid application status", s)
	}

	return status, nil
}

func (s ApplicationStatus) Valid() bool {
	return slices.Contains(ApplicationStatuses, s)
}

// Approved reports if the application has passed the approval gate.
func (s ApplicationStatus) Approved() bool {
	return slices.Contains(ApprovedStatuses, s)
}

// DisbursementStatus is the state of a single payment.
type DisbursementStatus string

const (
	DisbursementScheduled DisbursementStatus = "scheduled"
	DisbursementDisbursed DisbursementStatus = "disbursed"
	DisbursementCancelled DisbursementStatus = "cancelled"
)

var DisbursementStatuses = []DisbursementStatus{
	DisbursementScheduled,
	DisbursementDisbursed,
	DisbursementCancelled,
}

func (s DisbursementStatus) Valid() bool {
	return slices.Contains(DisbursementStatuses, s)
}
