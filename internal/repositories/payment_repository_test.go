package repositories

import (
	"testing"

	"dinarx-gateway/internal/database"
	"dinarx-gateway/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPaymentRepository(t *testing.T) {
	suite.Run(t, new(PaymentRepositorySuite))
}

type PaymentRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo PaymentRepositoryInterface
}

func (s *PaymentRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPaymentRepository(s.db.DB)
}

func (s *PaymentRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PaymentRepositorySuite) newRecord(id, consentID, userID string) *models.PaymentRecord {
	return &models.PaymentRecord{
		ID:           id,
		ConsentID:    consentID,
		UserID:       userID,
		PayeeName:    gofakeit.Name(),
		PayeeAccount: "JO71CBJO0000000000005678",
		Amount:       decimal.RequireFromString("25.500"),
		Currency:     "JOD",
		Reference:    "INV-2025-0042",
		Status:       models.PaymentStatusAwaitingAuthorisation,
	}
}

func (s *PaymentRepositorySuite) TestPaymentRepository_Create() {
	record := s.newRecord("PAY_001", "PC_789", "user-1")

	err := s.repo.Create(record)
	s.NoError(err)
	s.NotZero(record.CreatedAt)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_CreateNil() {
	err := s.repo.Create(nil)
	s.Error(err)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_GetByID() {
	s.NoError(s.repo.Create(s.newRecord("PAY_001", "PC_789", "user-1")))

	record, err := s.repo.GetByID("PAY_001")
	s.NoError(err)
	s.Equal("PC_789", record.ConsentID)
	s.True(record.Amount.Equal(decimal.RequireFromString("25.5")))
	s.Equal("JOD", record.Currency)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_GetByID_NotFound() {
	record, err := s.repo.GetByID("MISSING")
	s.ErrorIs(err, ErrPaymentNotFound)
	s.Nil(record)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_GetByConsentID() {
	s.NoError(s.repo.Create(s.newRecord("PAY_001", "PC_789", "user-1")))
	s.NoError(s.repo.Create(s.newRecord("PAY_002", "PC_789", "user-1")))
	s.NoError(s.repo.Create(s.newRecord("PAY_003", "PC_OTHER", "user-1")))

	records, err := s.repo.GetByConsentID("PC_789")
	s.NoError(err)
	s.Len(records, 2)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_GetByUserID_Pagination() {
	s.NoError(s.repo.Create(s.newRecord("PAY_001", "PC_1", "user-1")))
	s.NoError(s.repo.Create(s.newRecord("PAY_002", "PC_2", "user-1")))
	s.NoError(s.repo.Create(s.newRecord("PAY_003", "PC_3", "user-2")))

	records, total, err := s.repo.GetByUserID("user-1", 0, 1)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(records, 1)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_UpdateStatus() {
	s.NoError(s.repo.Create(s.newRecord("PAY_001", "PC_789", "user-1")))

	s.NoError(s.repo.UpdateStatus("PAY_001", models.PaymentStatusAcceptedSettlementInProcess))

	record, err := s.repo.GetByID("PAY_001")
	s.NoError(err)
	s.Equal(models.PaymentStatusAcceptedSettlementInProcess, record.Status)
	s.True(record.IsSettling())
}

func (s *PaymentRepositorySuite) TestPaymentRepository_UpdateStatus_NotFound() {
	err := s.repo.UpdateStatus("MISSING", models.PaymentStatusRejected)
	s.ErrorIs(err, ErrPaymentNotFound)
}
