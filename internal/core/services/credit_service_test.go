package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CreditServiceTestSuite struct {
	suite.Suite
	creditRepo *MockCreditRepository
	userRepo   *MockUserRepository
	leadRepo   *MockLeadRepository
	service    portssvc.CreditSvcFacade
	ctx        context.Context
	userID     string
	leadID     string
}

func (s *CreditServiceTestSuite) SetupTest() {
	s.creditRepo = new(MockCreditRepository)
	s.userRepo = new(MockUserRepository)
	s.leadRepo = new(MockLeadRepository)
	s.service = services.NewCreditService(s.creditRepo, s.userRepo, s.leadRepo)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.leadID = uuid.NewString()

	s.creditRepo.On("Begin", mock.Anything).Return(nil, nil).Maybe()
	s.creditRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func TestCreditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}

func (s *CreditServiceTestSuite) ownedLead() *domain.Lead {
	return &domain.Lead{LeadID: s.leadID, UserID: s.userID, Name: "Acme"}
}

func (s *CreditServiceTestSuite) TestUnlock_ChargesAndRecords() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(5, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(s.ownedLead(), nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, -2).Return(3, nil).Once()
	s.leadRepo.On("MarkUnlocked", mock.Anything, mock.Anything, s.leadID, domain.UnlockPhone).Return(nil).Once()
	s.creditRepo.On("AppendTransaction", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.CreditTransaction) bool {
		return e.UserID == s.userID && e.Amount == -2 && e.Description == "Unlock phone" && e.TransactionID != ""
	})).Return(nil).Once()
	s.creditRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "phone")

	s.Require().NoError(err)
	s.True(result.Charged)
	s.Equal(3, result.Credits)
	s.True(result.Lead.PhoneUnlocked)
	s.False(result.Lead.EmailUnlocked)
	s.creditRepo.AssertExpectations(s.T())
	s.userRepo.AssertExpectations(s.T())
	s.leadRepo.AssertExpectations(s.T())
}

func (s *CreditServiceTestSuite) TestUnlock_AlreadyUnlockedIsFree() {
	lead := s.ownedLead()
	lead.EmailUnlocked = true
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(7, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(lead, nil).Once()

	result, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "email")

	s.Require().NoError(err)
	s.False(result.Charged)
	s.Equal(7, result.Credits)
	s.True(result.Lead.EmailUnlocked)
	s.userRepo.AssertNotCalled(s.T(), "AdjustCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.creditRepo.AssertNotCalled(s.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
	s.creditRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestUnlock_InsufficientCredits() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(1, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(s.ownedLead(), nil).Once()

	result, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "phone")

	s.Nil(result)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientCredits)
	s.Equal(http.StatusBadRequest, apperrors.StatusCode(err))
	s.userRepo.AssertNotCalled(s.T(), "AdjustCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.leadRepo.AssertNotCalled(s.T(), "MarkUnlocked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestUnlock_ExactBalanceSucceeds() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(1, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(s.ownedLead(), nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, -1).Return(0, nil).Once()
	s.leadRepo.On("MarkUnlocked", mock.Anything, mock.Anything, s.leadID, domain.UnlockEmail).Return(nil).Once()
	s.creditRepo.On("AppendTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.creditRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "email")

	s.Require().NoError(err)
	s.Equal(0, result.Credits)
	s.True(result.Charged)
}

func (s *CreditServiceTestSuite) TestUnlock_InvalidType() {
	_, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "fax")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	var appErr *apperrors.AppError
	s.Require().True(errors.As(err, &appErr))
	s.Equal("Invalid unlock type", appErr.Message)
	s.creditRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *CreditServiceTestSuite) TestUnlock_ForeignLeadIsNotFound() {
	foreign := &domain.Lead{LeadID: s.leadID, UserID: uuid.NewString()}
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(10, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(foreign, nil).Once()

	_, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "email")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.userRepo.AssertNotCalled(s.T(), "AdjustCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestUnlock_MalformedLeadID() {
	_, err := s.service.Unlock(s.ctx, s.userID, "not-a-uuid", "email")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.creditRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *CreditServiceTestSuite) TestUnlock_CommitFailure() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(5, nil).Once()
	s.leadRepo.On("FindLeadByIDForUpdate", mock.Anything, mock.Anything, s.leadID).Return(s.ownedLead(), nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, -1).Return(4, nil).Once()
	s.leadRepo.On("MarkUnlocked", mock.Anything, mock.Anything, s.leadID, domain.UnlockEmail).Return(nil).Once()
	s.creditRepo.On("AppendTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.creditRepo.On("Commit", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	result, err := s.service.Unlock(s.ctx, s.userID, s.leadID, "email")

	s.Nil(result)
	s.Error(err)
	s.creditRepo.AssertCalled(s.T(), "Rollback", mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestConfirmTopUp() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(25, nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, 10).Return(35, nil).Once()
	s.creditRepo.On("AppendTransaction", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.CreditTransaction) bool {
		return e.Amount == 10 && e.Description == "Top-up via session cs_test_1"
	})).Return(nil).Once()
	s.creditRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	balance, err := s.service.ConfirmTopUp(s.ctx, s.userID, 10, "cs_test_1")

	s.Require().NoError(err)
	s.Equal(35, balance)
	s.creditRepo.AssertExpectations(s.T())
}

func (s *CreditServiceTestSuite) TestConfirmTopUp_Validation() {
	for _, tc := range []struct {
		credits int
		session string
	}{
		{0, "cs_1"},
		{-5, "cs_1"},
		{10, ""},
		{10, "   "},
	} {
		_, err := s.service.ConfirmTopUp(s.ctx, s.userID, tc.credits, tc.session)
		s.Require().Error(err)
		var appErr *apperrors.AppError
		s.Require().True(errors.As(err, &appErr))
		s.Equal("Missing session or credits", appErr.Message)
	}
	s.creditRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *CreditServiceTestSuite) TestGrantCredits() {
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(0, nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, 50).Return(50, nil).Once()
	s.creditRepo.On("AppendTransaction", mock.Anything, mock.Anything, mock.MatchedBy(func(e domain.CreditTransaction) bool {
		return e.Description == "Manual grant: goodwill"
	})).Return(nil).Once()
	s.creditRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	balance, err := s.service.GrantCredits(s.ctx, s.userID, 50, " goodwill ")

	s.Require().NoError(err)
	s.Equal(50, balance)

	_, err = s.service.GrantCredits(s.ctx, s.userID, 0, "nothing")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CreditServiceTestSuite) TestAddCredits_OutOfRange() {
	tooMany := domain.MaxCreditsPerOperation + 1

	_, err := s.service.ConfirmTopUp(s.ctx, s.userID, tooMany, "cs_x")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Equal(http.StatusBadRequest, apperrors.StatusCode(err))

	_, err = s.service.GrantCredits(s.ctx, s.userID, tooMany, "bulk")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Equal(http.StatusBadRequest, apperrors.StatusCode(err))

	s.creditRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
	s.userRepo.AssertNotCalled(s.T(), "AdjustCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestConfirmTopUp_BalanceOverflowIsBadRequest() {
	overflow := apperrors.NewAppError(http.StatusBadRequest, "Credit balance out of range", apperrors.ErrValidation)
	s.userRepo.On("LockCredits", mock.Anything, mock.Anything, s.userID).Return(domain.MaxCreditsPerOperation-5, nil).Once()
	s.userRepo.On("AdjustCredits", mock.Anything, mock.Anything, s.userID, 10).Return(0, overflow).Once()

	_, err := s.service.ConfirmTopUp(s.ctx, s.userID, 10, "cs_x")

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Equal(http.StatusBadRequest, apperrors.StatusCode(err))
	s.creditRepo.AssertNotCalled(s.T(), "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
	s.creditRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *CreditServiceTestSuite) TestGetBalance() {
	s.userRepo.On("FindUserByID", mock.Anything, s.userID).Return(&domain.User{UserID: s.userID, Credits: 12}, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, s.userID)

	s.Require().NoError(err)
	s.Equal(12, balance)
}

func (s *CreditServiceTestSuite) TestListTransactions_ClampsLimit() {
	var noToken *string
	s.creditRepo.On("ListTransactions", mock.Anything, s.userID, 20, noToken).Return([]domain.CreditTransaction{}, nil, nil).Once()
	s.creditRepo.On("ListTransactions", mock.Anything, s.userID, 100, noToken).Return([]domain.CreditTransaction{}, nil, nil).Once()

	_, _, err := s.service.ListTransactions(s.ctx, s.userID, 0, nil)
	s.Require().NoError(err)
	_, _, err = s.service.ListTransactions(s.ctx, s.userID, 1000, nil)
	s.Require().NoError(err)
	s.creditRepo.AssertExpectations(s.T())
}
