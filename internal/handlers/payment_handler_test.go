package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dinarx-gateway/internal/dto"
	"dinarx-gateway/internal/models"
	"dinarx-gateway/internal/partner"
	"dinarx-gateway/internal/repositories"
	"dinarx-gateway/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PaymentHandlerSuite defines the test suite for PaymentHandler
type PaymentHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockPaymentServiceInterface
	handler     *PaymentHandler
	echo        *echo.Echo
}

func (s *PaymentHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockPaymentServiceInterface(s.ctrl)
	s.handler = NewPaymentHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *PaymentHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerSuite))
}

func (s *PaymentHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", "user-1")

	return c, rec
}

func instructionRequest() dto.PaymentInstructionRequest {
	return dto.PaymentInstructionRequest{
		PayeeName:    "Leen Haddad",
		PayeeAccount: "JO71CBJO0000000000005678",
		Amount:       "25.500",
		Currency:     "JOD",
		Reference:    "INV-2025-0042",
	}
}

func (s *PaymentHandlerSuite) TestCreatePaymentConsent_Success() {
	s.mockService.EXPECT().
		CreatePaymentConsent(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, instruction models.PaymentInstruction, _ string) (*partner.PaymentConsent, error) {
			s.Equal("Leen Haddad", instruction.PayeeName)
			s.True(instruction.Amount.Equal(decimal.RequireFromString("25.500")))
			return &partner.PaymentConsent{
				ID:        "PC_789",
				Status:    models.PaymentStatusAwaitingAuthorisation,
				CreatedAt: time.Now().UTC(),
			}, nil
		})

	c, rec := s.createContextWithAuth("POST", "/payments/consents", instructionRequest())

	err := s.handler.CreatePaymentConsent(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.PaymentConsentResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PC_789", resp.ConsentID)
	s.Equal(models.PaymentStatusAwaitingAuthorisation, resp.Status)
}

func (s *PaymentHandlerSuite) TestCreatePaymentConsent_BadAmount() {
	reqBody := instructionRequest()
	reqBody.Amount = "twenty"

	c, rec := s.createContextWithAuth("POST", "/payments/consents", reqBody)

	err := s.handler.CreatePaymentConsent(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PAYMENT_002", resp.Error.Code)
}

func (s *PaymentHandlerSuite) TestCreatePaymentConsent_MissingPayee() {
	reqBody := instructionRequest()
	reqBody.PayeeName = ""

	c, rec := s.createContextWithAuth("POST", "/payments/consents", reqBody)

	err := s.handler.CreatePaymentConsent(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *PaymentHandlerSuite) TestSubmitPayment_Success() {
	reqBody := dto.SubmitPaymentRequest{
		ConsentID:   "PC_789",
		Instruction: instructionRequest(),
	}

	record := &models.PaymentRecord{
		ID:        "PAY_001",
		ConsentID: "PC_789",
		UserID:    "user-1",
		Amount:    decimal.RequireFromString("25.500"),
		Currency:  "JOD",
		Status:    models.PaymentStatusAcceptedSettlementInProcess,
	}

	s.mockService.EXPECT().
		SubmitPayment(gomock.Any(), "user-1", "PC_789", gomock.Any(), gomock.Any()).
		Return(record, nil)

	c, rec := s.createContextWithAuth("POST", "/payments", reqBody)

	err := s.handler.SubmitPayment(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.PaymentResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PAY_001", resp.Payment.ID)
	s.Equal(models.PaymentStatusAcceptedSettlementInProcess, resp.Payment.Status)
}

func (s *PaymentHandlerSuite) TestSubmitPayment_MissingConsentID() {
	reqBody := map[string]interface{}{
		"instruction": instructionRequest(),
	}

	c, rec := s.createContextWithAuth("POST", "/payments", reqBody)

	err := s.handler.SubmitPayment(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestSubmitPayment_PartnerRejection covers a payment submitted before the
// consent was authorised: the partner's 400 is surfaced, not reinterpreted
func (s *PaymentHandlerSuite) TestSubmitPayment_PartnerRejection() {
	reqBody := dto.SubmitPaymentRequest{
		ConsentID:   "PC_UNAUTHORIZED",
		Instruction: instructionRequest(),
	}

	s.mockService.EXPECT().
		SubmitPayment(gomock.Any(), "user-1", "PC_UNAUTHORIZED", gomock.Any(), gomock.Any()).
		Return(nil, &partner.PartnerError{
			StatusCode: 400,
			Body:       `{"error":"consent not authorised"}`,
			Call:       "payment_create",
		})

	c, rec := s.createContextWithAuth("POST", "/payments", reqBody)

	err := s.handler.SubmitPayment(c)
	s.NoError(err)
	s.Equal(http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PAYMENT_004", resp.Error.Code)
	s.Contains(resp.Error.Details, "upstream_status: 400")
	s.Contains(resp.Error.Details, `upstream_body: {"error":"consent not authorised"}`)
}

func (s *PaymentHandlerSuite) TestGetPayment_Success() {
	s.mockService.EXPECT().
		GetPayment("PAY_001").
		Return(&models.PaymentRecord{ID: "PAY_001", Status: models.PaymentStatusAcceptedSettlementInProcess}, nil)

	c, rec := s.createContextWithAuth("GET", "/payments/PAY_001", nil)
	c.SetParamNames("paymentId")
	c.SetParamValues("PAY_001")

	err := s.handler.GetPayment(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PaymentHandlerSuite) TestGetPayment_NotFound() {
	s.mockService.EXPECT().
		GetPayment("PAY_MISSING").
		Return(nil, repositories.ErrPaymentNotFound)

	c, rec := s.createContextWithAuth("GET", "/payments/PAY_MISSING", nil)
	c.SetParamNames("paymentId")
	c.SetParamValues("PAY_MISSING")

	err := s.handler.GetPayment(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PAYMENT_001", resp.Error.Code)
}

func (s *PaymentHandlerSuite) TestListPayments_Success() {
	s.mockService.EXPECT().
		ListUserPayments("user-1", 0, 10).
		Return([]models.PaymentRecord{{ID: "PAY_001"}}, int64(1), nil)

	c, rec := s.createContextWithAuth("GET", "/payments", nil)

	err := s.handler.ListPayments(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.PaymentListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
}
