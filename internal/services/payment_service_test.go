package services_test

import (
	"context"
	"testing"
	"time"

	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/repositories/repository_mocks"
	"dinarx-gateway/internal/services"
	"dinarx-gateway/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

type PaymentServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	gateway     *service_mocks.MockPartnerGateway
	repo        *repository_mocks.MockPaymentRepositoryInterface
	service     services.PaymentServiceInterface
	instruction models.PaymentInstruction
}

func (s *PaymentServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = service_mocks.NewMockPartnerGateway(s.ctrl)
	s.repo = repository_mocks.NewMockPaymentRepositoryInterface(s.ctrl)
	s.service = services.NewPaymentService(s.gateway, s.repo, nil)
	s.instruction = models.PaymentInstruction{
		PayeeName:    "Leen Haddad",
		PayeeAccount: "JO71CBJO0000000000005678",
		Amount:       decimal.RequireFromString("25.500"),
		Currency:     "JOD",
		Reference:    "INV-2025-0042",
	}
}

func (s *PaymentServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCreatePaymentConsent_StepOne registers the instruction and returns
// the partner-issued consent
func (s *PaymentServiceSuite) TestCreatePaymentConsent_StepOne() {
	s.gateway.EXPECT().
		CreateDomesticPaymentConsent(gomock.Any(), s.instruction, "10.0.0.1").
		Return(&partner.PaymentConsent{
			ID:        "PC_789",
			Status:    models.PaymentStatusAwaitingAuthorisation,
			CreatedAt: time.Now().UTC(),
		}, nil)

	consent, err := s.service.CreatePaymentConsent(context.Background(), "user-1", s.instruction, "10.0.0.1")

	s.NoError(err)
	s.Equal("PC_789", consent.ID)
	s.Equal(models.PaymentStatusAwaitingAuthorisation, consent.Status)
}

// TestCreatePaymentConsent_ValidatesInstruction rejects bad instructions
// before any partner call
func (s *PaymentServiceSuite) TestCreatePaymentConsent_ValidatesInstruction() {
	cases := []struct {
		name   string
		mutate func(*models.PaymentInstruction)
	}{
		{"missing payee name", func(i *models.PaymentInstruction) { i.PayeeName = "" }},
		{"missing payee account", func(i *models.PaymentInstruction) { i.PayeeAccount = "" }},
		{"zero amount", func(i *models.PaymentInstruction) { i.Amount = decimal.Zero }},
		{"negative amount", func(i *models.PaymentInstruction) { i.Amount = decimal.RequireFromString("-5") }},
		{"bad currency", func(i *models.PaymentInstruction) { i.Currency = "DINAR" }},
	}

	for _, tc := range cases {
		instruction := s.instruction
		tc.mutate(&instruction)

		consent, err := s.service.CreatePaymentConsent(context.Background(), "user-1", instruction, "")
		s.Nil(consent, tc.name)
		s.Error(err, tc.name)
	}
}

// TestSubmitPayment_RecordsPartnerAnswer submits step two and stores the
// partner's status verbatim
func (s *PaymentServiceSuite) TestSubmitPayment_RecordsPartnerAnswer() {
	s.gateway.EXPECT().
		CreateDomesticPayment(gomock.Any(), "PC_789", s.instruction, "10.0.0.1").
		Return(&partner.PaymentResult{
			ID:        "PAY_001",
			ConsentID: "PC_789",
			Status:    models.PaymentStatusAcceptedSettlementInProcess,
			CreatedAt: time.Now().UTC(),
		}, nil)
	s.repo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(record *models.PaymentRecord) error {
			s.Equal("PAY_001", record.ID)
			s.Equal("PC_789", record.ConsentID)
			s.Equal("user-1", record.UserID)
			s.True(record.Amount.Equal(decimal.RequireFromString("25.5")))
			return nil
		})

	record, err := s.service.SubmitPayment(context.Background(), "user-1", "PC_789", s.instruction, "10.0.0.1")

	s.NoError(err)
	s.Equal(models.PaymentStatusAcceptedSettlementInProcess, record.Status)
	s.True(record.IsSettling())
}

// TestSubmitPayment_RequiresConsentID refuses step two with no consent,
// without touching the partner
func (s *PaymentServiceSuite) TestSubmitPayment_RequiresConsentID() {
	record, err := s.service.SubmitPayment(context.Background(), "user-1", "", s.instruction, "")

	s.Nil(record)
	s.ErrorContains(err, "consent ID is required")
}

// TestSubmitPayment_PartnerRejectionPassesThrough verifies an unauthorized
// consent is the partner's call to reject; the gateway adds nothing
func (s *PaymentServiceSuite) TestSubmitPayment_PartnerRejectionPassesThrough() {
	s.gateway.EXPECT().
		CreateDomesticPayment(gomock.Any(), "PC_UNAUTHORIZED", s.instruction, "").
		Return(nil, &partner.PartnerError{
			StatusCode: 400,
			Body:       `{"error":"consent not authorised"}`,
			Call:       "payment_create",
		})

	record, err := s.service.SubmitPayment(context.Background(), "user-1", "PC_UNAUTHORIZED", s.instruction, "")

	s.Nil(record)
	var partnerErr *partner.PartnerError
	s.ErrorAs(err, &partnerErr)
	s.Equal(400, partnerErr.StatusCode)
}

// TestSubmitPayment_RecordFailureDoesNotFailPayment verifies a local store
// failure is not reported as a failed payment
func (s *PaymentServiceSuite) TestSubmitPayment_RecordFailureDoesNotFailPayment() {
	s.gateway.EXPECT().
		CreateDomesticPayment(gomock.Any(), "PC_789", s.instruction, "").
		Return(&partner.PaymentResult{
			ID:        "PAY_001",
			ConsentID: "PC_789",
			Status:    models.PaymentStatusAwaitingAuthorisation,
		}, nil)
	s.repo.EXPECT().Create(gomock.Any()).Return(context.DeadlineExceeded)

	record, err := s.service.SubmitPayment(context.Background(), "user-1", "PC_789", s.instruction, "")

	s.NoError(err)
	s.Equal("PAY_001", record.ID)
}

// TestGetPayment delegates to the repository
func (s *PaymentServiceSuite) TestGetPayment() {
	s.repo.EXPECT().GetByID("PAY_001").Return(&models.PaymentRecord{ID: "PAY_001"}, nil)

	record, err := s.service.GetPayment("PAY_001")

	s.NoError(err)
	s.Equal("PAY_001", record.ID)
}

// TestListUserPayments applies the default page size
func (s *PaymentServiceSuite) TestListUserPayments() {
	s.repo.EXPECT().GetByUserID("user-1", 0, 10).
		Return([]models.PaymentRecord{{ID: "PAY_001"}}, int64(1), nil)

	records, total, err := s.service.ListUserPayments("user-1", 0, 0)

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(records, 1)
}
