package lifecycle_test

import (
	"errors"

	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/lifecycle"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreate() {
	application := suite.submit("1000", "250")

	suite.Assert().Equal(models.StatusPending, application.Status)
	suite.Assert().False(application.SubmittedAt.IsZero())
	suite.Assert().Nil(application.ReviewedAt)
	suite.Assert().Nil(application.ReviewedBy)
	suite.Assert().Nil(application.ReviewNotes)

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Require().Len(events, 1)
	suite.Assert().Equal("Submitted", events[0].Status)
	suite.Assert().Equal("System", events[0].User)
	suite.Assert().Equal("Application submitted for review", *events[0].Comment)
}

func (suite *TestSuiteStandard) TestCreateInvalid() {
	applicant := suite.createTestApplicant()
	program := suite.createTestProgram("1000", types.True)
	inactive := suite.createTestProgram("1000", types.False)

	tests := []struct {
		name       string
		submission lifecycle.Submission
		field      string
	}{
		{"Unknown applicant", lifecycle.Submission{ApplicantID: uuid.New(), ProgramID: program.ID, Amount: types.MustMoney("1"), Description: "x"}, "applicantId"},
		{"Unknown program", lifecycle.Submission{ApplicantID: applicant.ID, ProgramID: uuid.New(), Amount: types.MustMoney("1"), Description: "x"}, "programId"},
		{"Inactive program", lifecycle.Submission{ApplicantID: applicant.ID, ProgramID: inactive.ID, Amount: types.MustMoney("1"), Description: "x"}, "programId"},
		{"Zero amount", lifecycle.Submission{ApplicantID: applicant.ID, ProgramID: program.ID, Description: "x"}, "amount"},
		{"Negative amount", lifecycle.Submission{ApplicantID: applicant.ID, ProgramID: program.ID, Amount: types.MustMoney("-1"), Description: "x"}, "amount"},
		{"No description", lifecycle.Submission{ApplicantID: applicant.ID, ProgramID: program.ID, Amount: types.MustMoney("1"), Description: "  "}, "description"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.manager.Create(suite.ctx, tt.submission)

			var validationErr models.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Assert().Equal(tt.field, validationErr.Fields[0].Field)
		})
	}

	applications, err := suite.manager.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(applications, 0, "no application must be written for invalid submissions")

	var events int64
	suite.Require().Nil(suite.db.Model(&models.TimelineEvent{}).Count(&events).Error)
	suite.Assert().Equal(int64(0), events, "no timeline event must be written for invalid submissions")
}

func (suite *TestSuiteStandard) TestCreateInactiveProgramSentinel() {
	_, err := suite.manager.Create(suite.ctx, lifecycle.Submission{
		ApplicantID: suite.createTestApplicant().ID,
		ProgramID:   suite.createTestProgram("1000", types.False).ID,
		Amount:      types.MustMoney("1"),
		Description: "x",
	})
	suite.Assert().ErrorIs(err, models.ErrProgramInactive)
}

func (suite *TestSuiteStandard) TestSetStatus() {
	application := suite.submit("1000", "250")
	reviewer := "Admin"
	notes := "Strong proposal"

	updated, err := suite.manager.SetStatus(suite.ctx, application.ID, lifecycle.Review{
		Status:      "approved",
		ReviewedBy:  &reviewer,
		ReviewNotes: &notes,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusApproved, updated.Status)
	suite.Assert().NotNil(updated.ReviewedAt)
	suite.Assert().Equal("Admin", *updated.ReviewedBy)
	suite.Assert().Equal("Strong proposal", *updated.ReviewNotes)

	loaded, err := suite.manager.Get(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusApproved, loaded.Status)
	suite.Assert().True(application.SubmittedAt.Equal(loaded.SubmittedAt), "submittedAt must not change")

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Require().Len(events, 2)
	suite.Assert().Equal("Approved", events[0].Status)
	suite.Assert().Equal("Admin", events[0].User)
	suite.Assert().Equal("Strong proposal", *events[0].Comment)
	suite.Assert().Equal("Submitted", events[1].Status)
}

func (suite *TestSuiteStandard) TestSetStatusDefaults() {
	application := suite.submit("1000", "250")
	updated := suite.setStatus(application, models.StatusUnderReview)
	suite.Assert().Nil(updated.ReviewedBy)

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Under Review", events[0].Status)
	suite.Assert().Equal("System", events[0].User)
	suite.Assert().Equal("Application status changed to under_review", *events[0].Comment)
}

func (suite *TestSuiteStandard) TestSetStatusFullLifecycle() {
	application := suite.submit("1000", "250")

	for _, status := range []models.ApplicationStatus{models.StatusUnderReview, models.StatusApproved, models.StatusDisbursed, models.StatusCompleted} {
		application = suite.setStatus(application, status)
	}
	suite.Assert().Equal(models.StatusCompleted, application.Status)

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)

	labels := []string{}
	for _, e := range events {
		labels = append(labels, e.Status)
	}
	suite.Assert().Equal([]string{"Completed", "Disbursed", "Approved", "Under Review", "Submitted"}, labels)
}

func (suite *TestSuiteStandard) TestSetStatusInvalid() {
	application := suite.submit("1000", "250")

	for _, status := range []string{"", "  ", "archived", "pending", "disbursed", "completed"} {
		suite.Run(status, func() {
			_, err := suite.manager.SetStatus(suite.ctx, application.ID, lifecycle.Review{Status: status})

			var validationErr models.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Assert().Equal("status", validationErr.Fields[0].Field)
		})
	}

	// A disallowed transition leaves the application and its timeline untouched
	loaded, err := suite.manager.Get(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusPending, loaded.Status)
	suite.Assert().Nil(loaded.ReviewedAt)

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(events, 1)
}

func (suite *TestSuiteStandard) TestSetStatusTerminal() {
	application := suite.submit("1000", "250")
	suite.setStatus(application, models.StatusRejected)

	_, err := suite.manager.SetStatus(suite.ctx, application.ID, lifecycle.Review{Status: "approved"})
	suite.Assert().ErrorIs(err, lifecycle.ErrInvalidTransition)
}

func (suite *TestSuiteStandard) TestSetStatusNotFound() {
	_, err := suite.manager.SetStatus(suite.ctx, uuid.New(), lifecycle.Review{Status: "approved"})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = suite.manager.Get(suite.ctx, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestApprovalAllocates() {
	application := suite.submit("1000", "250.25")
	suite.setStatus(application, models.StatusApproved)

	program, found, err := suite.repo.Program(suite.ctx, application.ProgramID)
	suite.Require().Nil(err)
	suite.Require().True(found)
	suite.Assert().Equal("250.25", program.Allocated.String())

	// Later transitions do not allocate again
	suite.setStatus(application, models.StatusDisbursed)
	program, _, err = suite.repo.Program(suite.ctx, application.ProgramID)
	suite.Require().Nil(err)
	suite.Assert().Equal("250.25", program.Allocated.String())
}

func (suite *TestSuiteStandard) TestApprovalExceedsBudget() {
	application := suite.submit("100", "100.01")

	_, err := suite.manager.SetStatus(suite.ctx, application.ID, lifecycle.Review{Status: "approved"})
	suite.Assert().ErrorIs(err, models.ErrBudgetExceeded)

	var validationErr models.ValidationError
	suite.Assert().ErrorAs(err, &validationErr)

	loaded, err := suite.manager.Get(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusPending, loaded.Status)

	program, _, err := suite.repo.Program(suite.ctx, application.ProgramID)
	suite.Require().Nil(err)
	suite.Assert().Equal("0.00", program.Allocated.String())

	events, err := suite.manager.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(events, 1)
}

func (suite *TestSuiteStandard) TestApprovalExactBudget() {
	application := suite.submit("100", "100")
	suite.setStatus(application, models.StatusApproved)

	program, _, err := suite.repo.Program(suite.ctx, application.ProgramID)
	suite.Require().Nil(err)
	suite.Assert().Equal("0.00", program.Remaining().String())
}

func (suite *TestSuiteStandard) TestListNewestFirst() {
	applicant := suite.createTestApplicant()
	program := suite.createTestProgram("1000", types.True)

	ids := []uuid.UUID{}
	for i := 0; i < 3; i++ {
		a, err := suite.manager.Create(suite.ctx, lifecycle.Submission{
			ApplicantID: applicant.ID,
			ProgramID:   program.ID,
			Amount:      types.MustMoney("1"),
			Description: "x",
		})
		suite.Require().Nil(err)
		ids = append([]uuid.UUID{a.ID}, ids...)
	}

	applications, err := suite.manager.List(suite.ctx)
	suite.Require().Nil(err)
	suite.Require().Len(applications, 3)
	for i, a := range applications {
		suite.Assert().Equal(ids[i], a.ID)
	}
}

func (suite *TestSuiteStandard) TestDatabaseError() {
	application := suite.submit("1000", "1")
	suite.CloseDB()

	_, err := suite.manager.SetStatus(suite.ctx, application.ID, lifecycle.Review{Status: "approved"})
	suite.Assert().NotNil(err)

	var validationErr models.ValidationError
	suite.Assert().False(errors.As(err, &validationErr))

	_, err = suite.manager.List(suite.ctx)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
