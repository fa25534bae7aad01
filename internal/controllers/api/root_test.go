package api_test

import (
	"net/http"

	"github.com/grantdesk/backend/internal/controllers/api"
	"github.com/grantdesk/backend/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := suite.request(http.MethodGet, "http://example.com/api", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response api.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(api.RootLinks{
		Programs:      "http://example.com/api/programs",
		Applicants:    "http://example.com/api/applicants",
		Applications:  "http://example.com/api/applications",
		Disbursements: "http://example.com/api/disbursements",
		Stats:         "http://example.com/api/stats",
	}, response.Links)
}
