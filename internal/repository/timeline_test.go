package repository_test

import (
	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/repository"
)

func (suite *TestSuiteStandard) TestTimeline() {
	application := suite.createTestApplication(suite.createTestApplicant("t@example.com"), suite.createTestProgram("1000"), "500")

	for _, label := range []string{"Submitted", "Under Review", "Approved"} {
		suite.Require().Nil(suite.repo.AppendTimelineEvent(suite.ctx, &models.TimelineEvent{
			ApplicationID: application.ID,
			Status:        label,
		}))
	}

	events, err := suite.repo.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Require().Len(events, 3)
	suite.Assert().Equal("Approved", events[0].Status)
	suite.Assert().Equal("Under Review", events[1].Status)
	suite.Assert().Equal("Submitted", events[2].Status)
	suite.Assert().Equal(models.SystemUser, events[0].User, "the actor defaults to System")
}

func (suite *TestSuiteStandard) TestTimelineUnknownApplication() {
	events, err := suite.repo.Timeline(suite.ctx, uuid.New())
	suite.Require().Nil(err)
	suite.Assert().Len(events, 0)
}

func (suite *TestSuiteStandard) TestTimelineAppendOnly() {
	application := suite.createTestApplication(suite.createTestApplicant("t@example.com"), suite.createTestProgram("1000"), "500")
	e := models.TimelineEvent{ApplicationID: application.ID, Status: "Submitted"}
	suite.Require().Nil(suite.repo.AppendTimelineEvent(suite.ctx, &e))

	suite.Assert().ErrorIs(suite.db.Model(&e).Update("status", "Rewritten").Error, models.ErrAppendOnly)
	suite.Assert().ErrorIs(suite.db.Delete(&e).Error, models.ErrAppendOnly)
}

func (suite *TestSuiteStandard) TestTransactionRollback() {
	application := suite.createTestApplication(suite.createTestApplicant("t@example.com"), suite.createTestProgram("1000"), "500")

	err := suite.repo.Transaction(suite.ctx, func(tx *repository.Repository) error {
		err := tx.AppendTimelineEvent(suite.ctx, &models.TimelineEvent{ApplicationID: application.ID, Status: "Submitted"})
		suite.Require().Nil(err)

		return tx.AppendTimelineEvent(suite.ctx, &models.TimelineEvent{ApplicationID: application.ID})
	})
	suite.Assert().NotNil(err)

	events, err := suite.repo.Timeline(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(events, 0, "the first event must be rolled back")
}

func (suite *TestSuiteStandard) TestPing() {
	suite.Assert().Nil(suite.repo.Ping(suite.ctx))

	suite.CloseDB()
	suite.Assert().NotNil(suite.repo.Ping(suite.ctx))
}
