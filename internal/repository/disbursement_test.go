package repository_test

import (
	"github.com/google/uuid"
	"github.com/grantdesk/backend/internal/models"
	"github.com/grantdesk/backend/internal/types"
)

func (suite *TestSuiteStandard) createTestDisbursement(application models.Application, amount string, scheduled types.Date, status models.DisbursementStatus) models.Disbursement {
	d := models.Disbursement{
		ApplicationID: application.ID,
		Amount:        types.MustMoney(amount),
		ScheduledDate: scheduled,
		Status:        status,
	}
	suite.Require().Nil(suite.repo.CreateDisbursement(suite.ctx, &d))
	return d
}

func (suite *TestSuiteStandard) TestCreateDisbursement() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000"), "500")

	d := models.Disbursement{
		ApplicationID: application.ID,
		Amount:        types.MustMoney("125.555"),
		ScheduledDate: types.NewDate(2025, 2, 1),
	}
	suite.Require().Nil(suite.repo.CreateDisbursement(suite.ctx, &d))
	suite.Assert().Equal(models.DisbursementScheduled, d.Status)
	suite.Assert().Equal("125.56", d.Amount.String())
}

func (suite *TestSuiteStandard) TestCreateDisbursementUnknownApplication() {
	err := suite.repo.CreateDisbursement(suite.ctx, &models.Disbursement{
		ApplicationID: uuid.New(),
		Amount:        types.MustMoney("1"),
		ScheduledDate: types.NewDate(2025, 2, 1),
	})

	var validationErr models.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Assert().Equal("applicationId", validationErr.Fields[0].Field)
}

func (suite *TestSuiteStandard) TestCreateDisbursementInvalidStatus() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000"), "500")

	err := suite.repo.CreateDisbursement(suite.ctx, &models.Disbursement{
		ApplicationID: application.ID,
		Amount:        types.MustMoney("1"),
		ScheduledDate: types.NewDate(2025, 2, 1),
		Status:        "lost",
	})

	var validationErr models.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Assert().Equal("status", validationErr.Fields[0].Field)
}

func (suite *TestSuiteStandard) TestDisbursementsOrder() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000"), "500")
	other := suite.createTestApplication(suite.createTestApplicant("o@example.com"), suite.createTestProgram("1000"), "500")

	march := suite.createTestDisbursement(application, "1", types.NewDate(2025, 3, 1), models.DisbursementScheduled)
	january := suite.createTestDisbursement(application, "2", types.NewDate(2025, 1, 1), models.DisbursementDisbursed)
	february := suite.createTestDisbursement(application, "3", types.NewDate(2025, 2, 1), models.DisbursementScheduled)
	suite.createTestDisbursement(other, "4", types.NewDate(2025, 4, 1), models.DisbursementScheduled)

	disbursements, err := suite.repo.Disbursements(suite.ctx, application.ID)
	suite.Require().Nil(err)
	suite.Require().Len(disbursements, 3)
	suite.Assert().Equal(march.ID, disbursements[0].ID)
	suite.Assert().Equal(february.ID, disbursements[1].ID)
	suite.Assert().Equal(january.ID, disbursements[2].ID)
}

func (suite *TestSuiteStandard) TestDisbursementsAppendOnly() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000"), "500")
	d := suite.createTestDisbursement(application, "1", types.NewDate(2025, 3, 1), models.DisbursementScheduled)

	err := suite.db.Model(&d).Update("status", models.DisbursementDisbursed).Error
	suite.Assert().ErrorIs(err, models.ErrAppendOnly)

	err = suite.db.Delete(&d).Error
	suite.Assert().ErrorIs(err, models.ErrAppendOnly)
}

func (suite *TestSuiteStandard) TestDisbursementAmounts() {
	application := suite.createTestApplication(suite.createTestApplicant("d@example.com"), suite.createTestProgram("1000"), "500")
	suite.createTestDisbursement(application, "100.10", types.NewDate(2025, 1, 1), models.DisbursementDisbursed)
	suite.createTestDisbursement(application, "0.20", types.NewDate(2025, 2, 1), models.DisbursementDisbursed)
	suite.createTestDisbursement(application, "999", types.NewDate(2025, 3, 1), models.DisbursementScheduled)

	amounts, err := suite.repo.DisbursementAmounts(suite.ctx, models.DisbursementDisbursed)
	suite.Require().Nil(err)
	suite.Assert().Equal("100.30", types.Sum(amounts...).String())
}
