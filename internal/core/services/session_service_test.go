package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/core/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.March, 5, 14, 7, 9, 123456000, time.UTC)

type SessionServiceTestSuite struct {
	suite.Suite
	sessionRepo *MockSessionRepository
	clientRepo  *MockClientRepository
	configRepo  *MockBusinessConfigRepository
	service     portssvc.SessionSvcFacade
	ctx         context.Context
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.sessionRepo = new(MockSessionRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.configRepo = new(MockBusinessConfigRepository)
	suite.ctx = context.Background()
	suite.service = services.NewSessionService(suite.sessionRepo, suite.clientRepo, suite.configRepo,
		services.WithClock(func() time.Time { return fixedNow }))
}

func (suite *SessionServiceTestSuite) TestCreateSession_Success() {
	client := &domain.Client{ID: "c1", Name: "Mrs Smith", DefaultMiles: decimal.NewFromInt(6)}
	suite.clientRepo.On("FindClientByID", suite.ctx, "c1").Return(client, nil).Once()
	suite.configRepo.On("GetBusinessConfig", suite.ctx).Return(defaultConfig(), nil).Once()
	suite.sessionRepo.On("SaveSession", suite.ctx, mock.MatchedBy(func(s domain.WorkSession) bool {
		return s.ID == "2024-03-05T14:07:09.123456" && s.ClientID == "c1"
	})).Return(nil).Once()

	session, err := suite.service.CreateSession(suite.ctx, dto.CreateSessionRequest{
		ClientID:  "c1",
		Date:      "2024-03-04",
		StartTime: "23:00",
		EndTime:   "01:20",
	})

	suite.Require().NoError(err)
	suite.Equal("2.33", session.Hours.StringFixed(2))
	suite.Equal("15.00", session.Rate.StringFixed(2))
	suite.Equal("35.00", session.Amount.StringFixed(2))
	suite.Equal("6", session.Miles.String())
	suite.sessionRepo.AssertExpectations(suite.T())
	suite.clientRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCreateSession_ExplicitMiles() {
	suite.clientRepo.On("FindClientByID", suite.ctx, "c1").Return(&domain.Client{ID: "c1", DefaultMiles: decimal.NewFromInt(6)}, nil).Once()
	suite.configRepo.On("GetBusinessConfig", suite.ctx).Return(defaultConfig(), nil).Once()
	suite.sessionRepo.On("SaveSession", suite.ctx, mock.Anything).Return(nil).Once()

	zero := decimal.Zero
	session, err := suite.service.CreateSession(suite.ctx, dto.CreateSessionRequest{
		ClientID: "c1", Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00", Miles: &zero,
	})
	suite.Require().NoError(err)
	suite.True(session.Miles.IsZero())
}

func (suite *SessionServiceTestSuite) TestCreateSession_ValidationErrors() {
	cases := []dto.CreateSessionRequest{
		{ClientID: "c1", Date: "04/03/2024", StartTime: "09:00", EndTime: "10:00"},
		{ClientID: "c1", Date: "2024-03-04", StartTime: "9am", EndTime: "10:00"},
		{ClientID: "c1", Date: "2024-03-04", StartTime: "09:00", EndTime: "25:00"},
	}
	for _, req := range cases {
		_, err := suite.service.CreateSession(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.sessionRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *SessionServiceTestSuite) TestCreateSession_UnknownClient() {
	suite.clientRepo.On("FindClientByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateSession(suite.ctx, dto.CreateSessionRequest{
		ClientID: "ghost", Date: "2024-03-04", StartTime: "09:00", EndTime: "10:00",
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestUpdateSession_KeepsStoredRate() {
	stored := &domain.WorkSession{
		ID: "s1", ClientID: "c1", Date: fixedNow,
		Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 10},
		Rate: decimal.NewFromInt(12), Hours: decimal.NewFromInt(1), Amount: decimal.NewFromInt(12),
	}
	suite.sessionRepo.On("FindSessionByID", suite.ctx, "s1").Return(stored, nil).Once()
	suite.sessionRepo.On("UpdateSessions", suite.ctx, mock.Anything).Return(nil).Once()

	end := "11:30"
	updated, err := suite.service.UpdateSession(suite.ctx, "s1", dto.UpdateSessionRequest{EndTime: &end})

	suite.Require().NoError(err)
	suite.Equal("2.50", updated.Hours.StringFixed(2))
	suite.Equal("30.00", updated.Amount.StringFixed(2))
	suite.configRepo.AssertNotCalled(suite.T(), "GetBusinessConfig", mock.Anything)
}

func (suite *SessionServiceTestSuite) TestUpdateSession_NewRate() {
	stored := &domain.WorkSession{
		ID: "s1", ClientID: "c1", Date: fixedNow,
		Start: domain.TimeOfDay{Hour: 9}, End: domain.TimeOfDay{Hour: 11},
		Rate: decimal.NewFromInt(12),
	}
	suite.sessionRepo.On("FindSessionByID", suite.ctx, "s1").Return(stored, nil).Once()
	suite.sessionRepo.On("UpdateSessions", suite.ctx, mock.Anything).Return(nil).Once()

	rate := decimal.RequireFromString("17.5")
	updated, err := suite.service.UpdateSession(suite.ctx, "s1", dto.UpdateSessionRequest{HourlyRate: &rate})
	suite.Require().NoError(err)
	suite.Equal("35.00", updated.Amount.StringFixed(2))
}

func (suite *SessionServiceTestSuite) TestDeleteAllSessions_RequiresConfirmation() {
	err := suite.service.DeleteAllSessions(suite.ctx, false)
	suite.ErrorIs(err, apperrors.ErrConfirmationRequired)
	suite.sessionRepo.AssertNotCalled(suite.T(), "DeleteAllSessions", mock.Anything)

	suite.sessionRepo.On("DeleteAllSessions", suite.ctx).Return(nil).Once()
	suite.NoError(suite.service.DeleteAllSessions(suite.ctx, true))
	suite.sessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestDeleteSession_NotFound() {
	suite.sessionRepo.On("DeleteSession", suite.ctx, "nope").Return(apperrors.ErrNotFound).Once()
	suite.ErrorIs(suite.service.DeleteSession(suite.ctx, "nope"), apperrors.ErrNotFound)
}

func (suite *SessionServiceTestSuite) TestListSessions_FiltersByClient() {
	suite.sessionRepo.On("ListSessions", suite.ctx).Return([]domain.WorkSession{
		{ID: "a", ClientID: "c1"}, {ID: "b", ClientID: "c2"},
	}, nil).Twice()

	all, err := suite.service.ListSessions(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 2)

	only, err := suite.service.ListSessions(suite.ctx, "c2")
	suite.Require().NoError(err)
	suite.Require().Len(only, 1)
	suite.Equal("b", only[0].ID)
}

func (suite *SessionServiceTestSuite) TestBackfillMiles() {
	sessions := []domain.WorkSession{
		{ID: "a", ClientID: "c1"},
		{ID: "b", ClientID: "c2"},
	}
	clients := []domain.Client{
		{ID: "c1", DefaultMiles: decimal.NewFromInt(4)},
		{ID: "c2"},
	}
	suite.sessionRepo.On("ListSessions", suite.ctx).Return(sessions, nil).Twice()
	suite.clientRepo.On("ListClients", suite.ctx).Return(clients, nil).Twice()

	dry, err := suite.service.BackfillMiles(suite.ctx, false)
	suite.Require().NoError(err)
	suite.Require().Len(dry, 1)
	suite.sessionRepo.AssertNotCalled(suite.T(), "UpdateSessions", mock.Anything, mock.Anything)

	suite.sessionRepo.On("UpdateSessions", suite.ctx, mock.MatchedBy(func(changed []domain.WorkSession) bool {
		return len(changed) == 1 && changed[0].ID == "a" && changed[0].Miles.Equal(decimal.NewFromInt(4))
	})).Return(nil).Once()
	applied, err := suite.service.BackfillMiles(suite.ctx, true)
	suite.Require().NoError(err)
	suite.Len(applied, 1)
	suite.sessionRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestListSessions_RepoError() {
	suite.sessionRepo.On("ListSessions", suite.ctx).Return(nil, errors.New("disk on fire")).Once()
	_, err := suite.service.ListSessions(suite.ctx, "")
	suite.Error(err)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
