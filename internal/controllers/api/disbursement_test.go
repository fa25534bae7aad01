package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
	"github.com/grantdesk/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestDisbursement(application models.Application, body map[string]any) models.Disbursement {
	body["applicationId"] = application.ID

	r := suite.request(http.MethodPost, "http://example.com/api/disbursements", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var disbursement models.Disbursement
	test.DecodeResponse(suite.T(), &r, &disbursement)
	return disbursement
}

func (suite *TestSuiteStandard) TestDisbursementCreate() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000", 1), "500")

	disbursement := suite.createTestDisbursement(application, map[string]any{
		"amount":        "250",
		"scheduledDate": "2024-06-01",
		"notes":         "First tranche",
	})

	suite.Assert().Equal(application.ID, disbursement.ApplicationID)
	suite.Assert().Equal("250.00", disbursement.Amount.String())
	suite.Assert().Equal("2024-06-01", disbursement.ScheduledDate.String())
	suite.Assert().Equal(models.DisbursementScheduled, disbursement.Status)
	suite.Assert().Nil(disbursement.DisbursedDate)
	suite.Assert().Equal("First tranche", *disbursement.Notes)
}

func (suite *TestSuiteStandard) TestDisbursementCreateDisbursed() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000", 1), "500")

	disbursement := suite.createTestDisbursement(application, map[string]any{
		"amount":        "250",
		"scheduledDate": "2024-06-01",
		"status":        "disbursed",
	})

	suite.Require().NotNil(disbursement.DisbursedDate)
	suite.Assert().Equal(types.DateOf(time.Now().UTC()).String(), disbursement.DisbursedDate.String())

	explicit := suite.createTestDisbursement(application, map[string]any{
		"amount":        "250",
		"scheduledDate": "2024-07-01",
		"disbursedDate": "2024-07-03",
		"status":        "disbursed",
	})
	suite.Assert().Equal("2024-07-03", explicit.DisbursedDate.String())
}

func (suite *TestSuiteStandard) TestDisbursementCreateErrors() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000", 1), "500")

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"Unknown application", map[string]any{"applicationId": uuid.New(), "amount": "10", "scheduledDate": "2024-06-01"}, "applicationId"},
		{"Missing application", map[string]any{"amount": "10", "scheduledDate": "2024-06-01"}, "applicationId"},
		{"Negative amount", map[string]any{"applicationId": application.ID, "amount": "-10", "scheduledDate": "2024-06-01"}, "amount"},
		{"No date", map[string]any{"applicationId": application.ID, "amount": "10"}, "scheduledDate"},
		{"Invalid status", map[string]any{"applicationId": application.ID, "amount": "10", "scheduledDate": "2024-06-01", "status": "lost"}, "status"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/disbursements", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := test.DecodeError(t, &r)
			if assert.NotEmpty(t, e.Fields) {
				assert.Equal(t, tt.field, e.Fields[0].Field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDisbursementList() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000", 1), "500")

	june := suite.createTestDisbursement(application, map[string]any{"amount": "100", "scheduledDate": "2024-06-01"})
	august := suite.createTestDisbursement(application, map[string]any{"amount": "100", "scheduledDate": "2024-08-01"})
	july := suite.createTestDisbursement(application, map[string]any{"amount": "100", "scheduledDate": "2024-07-01"})

	r := suite.request(http.MethodGet, "http://example.com/api/applications/"+application.ID.String()+"/disbursements", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var disbursements []models.Disbursement
	test.DecodeResponse(suite.T(), &r, &disbursements)
	suite.Require().Len(disbursements, 3)
	suite.Assert().Equal(august.ID, disbursements[0].ID)
	suite.Assert().Equal(july.ID, disbursements[1].ID)
	suite.Assert().Equal(june.ID, disbursements[2].ID)
}

func (suite *TestSuiteStandard) TestDisbursementListUnknownApplication() {
	r := suite.request(http.MethodGet, "http://example.com/api/applications/4e743e94-6a4b-44d6-aba5-d77c87103ff7/disbursements", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}
