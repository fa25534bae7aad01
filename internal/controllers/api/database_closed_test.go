package api_test

import (
	"net/http"
	"testing"

	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestDatabaseClosed verifies that database errors are reported as server
// errors without details.
func (suite *TestSuiteStandard) TestDatabaseClosed() {
	program := suite.createTestProgram("1000", 1)
	applicant := suite.createTestApplicant("closed@example.com")
	application := suite.createTestApplication(applicant, program, "100")

	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/programs", nil},
		{http.MethodGet, "/api/programs/" + program.ID.String(), nil},
		{http.MethodPost, "/api/programs", map[string]any{"name": "A", "description": "B", "budget": "1", "deadline": "2030-01-01"}},
		{http.MethodPatch, "/api/programs/" + program.ID.String(), map[string]any{"name": "New"}},
		{http.MethodGet, "/api/applicants", nil},
		{http.MethodGet, "/api/applicants/" + applicant.ID.String(), nil},
		{http.MethodPost, "/api/applicants", map[string]any{"name": "A", "email": "a@example.com"}},
		{http.MethodGet, "/api/applications", nil},
		{http.MethodGet, "/api/applications/" + application.ID.String(), nil},
		{http.MethodPost, "/api/applications", map[string]any{"applicantId": applicant.ID, "programId": program.ID, "amount": "1", "description": "x"}},
		{http.MethodPatch, "/api/applications/" + application.ID.String() + "/status", map[string]any{"status": "approved"}},
		{http.MethodGet, "/api/applications/" + application.ID.String() + "/timeline", nil},
		{http.MethodGet, "/api/applications/" + application.ID.String() + "/disbursements", nil},
		{http.MethodPost, "/api/disbursements", map[string]any{"applicationId": application.ID, "amount": "1", "scheduledDate": "2024-06-01"}},
		{http.MethodGet, "/api/stats", nil},
		{http.MethodGet, "/healthz", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := test.Request(t, suite.controller, tt.method, "http://example.com"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, &r).Message)
		})
	}
}
