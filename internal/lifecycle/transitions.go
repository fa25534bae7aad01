package lifecycle

import (
	"strings"

	"github.com/grantdesk/backend/internal/models"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// transitions maps each status to the statuses it can change to.
// Statuses without an entry are terminal.
var transitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusPending:     {models.StatusUnderReview, models.StatusApproved, models.StatusRejected},
	models.StatusUnderReview: {models.StatusApproved, models.StatusRejected},
	models.StatusApproved:    {models.StatusDisbursed},
	models.StatusDisbursed:   {models.StatusCompleted},
}

// CanTransition reports if an application can change from one status to another.
func CanTransition(from, to models.ApplicationStatus) bool {
	return slices.Contains(transitions[from], to)
}

// Next returns the statuses an application in the status can change to.
func Next(from models.ApplicationStatus) []models.ApplicationStatus {
	return slices.Clone(transitions[from])
}

// Terminal reports if no transitions out of the status exist.
func Terminal(status models.ApplicationStatus) bool {
	return len(transitions[status]) == 0
}

var title = cases.Title(language.English)

// Label returns the human readable name of a status, e.g.
// "Under Review" for "under_review".
func Label(status models.ApplicationStatus) string {
	return title.String(strings.ReplaceAll(string(status), "_", " "))
}
