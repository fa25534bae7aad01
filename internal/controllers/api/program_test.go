package api_test

import (
	"net/http"
	"testing"

	"github.com/grantdesk/backend/internal/httputil"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
	"github.com/grantdesk/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProgramCreate() {
	program := suite.createTestProgram("500000", 1)

	suite.Assert().Equal("Community Garden Fund", program.Name)
	suite.Assert().Equal("500000.00", program.Budget.String())
	suite.Assert().Equal("0.00", program.Allocated.String())
	suite.Assert().Equal("2030-06-30", program.Deadline.String())
	suite.Assert().Equal(types.True, program.IsActive)
}

func (suite *TestSuiteStandard) TestProgramCreateActiveByDefault() {
	r := suite.request(http.MethodPost, "http://example.com/api/programs", map[string]any{
		"name":        "Default Fund",
		"description": "No isActive given",
		"budget":      1000,
		"deadline":    "2030-01-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var program models.GrantProgram
	test.DecodeResponse(suite.T(), &r, &program)
	suite.Assert().Equal(types.True, program.IsActive)
	suite.Assert().Equal("1000.00", program.Budget.String())
}

func (suite *TestSuiteStandard) TestProgramCreateInactive() {
	program := suite.createTestProgram("1000", 0)
	suite.Assert().Equal(types.False, program.IsActive)
}

func (suite *TestSuiteStandard) TestProgramCreateInvalid() {
	r := suite.request(http.MethodPost, "http://example.com/api/programs", map[string]any{
		"name":     " ",
		"budget":   "0",
		"deadline": "2030-01-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	e := test.DecodeError(suite.T(), &r)
	suite.Assert().Equal([]models.FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "description", Message: "description is required"},
		{Field: "budget", Message: "budget must be greater than 0"},
	}, e.Fields)
}

func (suite *TestSuiteStandard) TestProgramCreateBrokenBody() {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Empty", "", httputil.ErrRequestBodyEmpty},
		{"Broken JSON", `{ "name": `, httputil.ErrInvalidBody},
		{"Bad date", `{ "name": "x", "deadline": "next week" }`, httputil.ErrInvalidBody},
		{"Bad amount", `{ "name": "x", "budget": "a lot" }`, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPost, "http://example.com/api/programs", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, &r).Message, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestProgramList() {
	first := suite.createTestProgram("1000", 1)
	second := suite.createTestProgram("2000", 1)

	r := suite.request(http.MethodGet, "http://example.com/api/programs", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var programs []models.GrantProgram
	test.DecodeResponse(suite.T(), &r, &programs)
	suite.Require().Len(programs, 2)

	// Newest first
	suite.Assert().Equal(second.ID, programs[0].ID)
	suite.Assert().Equal(first.ID, programs[1].ID)
}

func (suite *TestSuiteStandard) TestProgramListEmpty() {
	r := suite.request(http.MethodGet, "http://example.com/api/programs", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestProgramGet() {
	program := suite.createTestProgram("1000", 1)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", program.ID.String(), http.StatusOK},
		{"Unknown", "4e743e94-6a4b-44d6-aba5-d77c87103ff7", http.StatusNotFound},
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodGet, "http://example.com/api/programs/"+tt.id, nil)
			test.AssertHTTPStatus(t, &r, tt.status)

			r = test.Request(t, suite.controller, http.MethodOptions, "http://example.com/api/programs/"+tt.id, nil)
			if tt.status == http.StatusOK {
				test.AssertHTTPStatus(t, &r, http.StatusNoContent)
				assert.Equal(t, "OPTIONS, GET, PATCH", r.Header().Get("allow"))
			} else {
				test.AssertHTTPStatus(t, &r, tt.status)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProgramGetNotFoundMessage() {
	r := suite.request(http.MethodGet, "http://example.com/api/programs/4e743e94-6a4b-44d6-aba5-d77c87103ff7", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no grant program with this ID", test.DecodeError(suite.T(), &r).Message)
}

func (suite *TestSuiteStandard) TestProgramUpdate() {
	program := suite.createTestProgram("1000", 1)

	r := suite.request(http.MethodPatch, "http://example.com/api/programs/"+program.ID.String(), map[string]any{
		"budget":   "2500.50",
		"isActive": 0,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.GrantProgram
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("2500.50", updated.Budget.String())
	suite.Assert().Equal(types.False, updated.IsActive)
	suite.Assert().Equal(program.Name, updated.Name, "Fields that are not sent must not change")
	suite.Assert().Equal(program.Deadline.String(), updated.Deadline.String())
}

func (suite *TestSuiteStandard) TestProgramUpdateBelowAllocated() {
	program := suite.createTestProgram("1000", 1)
	application := suite.createTestApplication(suite.createTestApplicant("update@example.com"), program, "800")

	r := suite.setStatus(application, map[string]string{"status": "approved"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodPatch, "http://example.com/api/programs/"+program.ID.String(), map[string]any{
		"budget": "500",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("budget", test.DecodeError(suite.T(), &r).Fields[0].Field)
}

func (suite *TestSuiteStandard) TestProgramUpdateErrors() {
	program := suite.createTestProgram("1000", 1)

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Unknown", "4e743e94-6a4b-44d6-aba5-d77c87103ff7", map[string]any{"name": "New"}, http.StatusNotFound},
		{"Not a UUID", "nope", map[string]any{"name": "New"}, http.StatusBadRequest},
		{"Empty body", program.ID.String(), "", http.StatusBadRequest},
		{"Empty name", program.ID.String(), map[string]any{"name": ""}, http.StatusBadRequest},
		{"Invalid isActive", program.ID.String(), map[string]any{"isActive": 7}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.controller, http.MethodPatch, "http://example.com/api/programs/"+tt.id, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
