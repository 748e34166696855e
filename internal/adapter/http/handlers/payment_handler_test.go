package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"convoyage/internal/adapter/http/handlers/mocks"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/documents/:id/payments", h.Create)
	r.GET("/v1/documents/:id/payments", h.ListByDocument)
	r.GET("/v1/payments/:paymentId", h.GetByID)
	return r
}

func TestPaymentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateForDocument(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, payload json.RawMessage) (entities.Payment, error) {
				var decoded map[string]interface{}
				if err := json.Unmarshal(payload, &decoded); err != nil {
					t.Fatalf("payload not forwarded as JSON: %v", err)
				}
				if decoded["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %v", decoded)
				}
				return entities.Payment{
					ID:         "pay-1",
					DocumentID: "inv-1",
					Date:       time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
					Status:     entities.PaymentStatusApproved,
				}, nil
			},
		)

		body := `{"provider_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/documents/inv-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"pay-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("quote is not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateForDocument(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrDocumentNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/q-1/payments", bytes.NewBufferString(`{"provider_payload":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateForDocument(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/inv-1/payments", bytes.NewBufferString(`{"provider_payload":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().CreateForDocument(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrPaymentGatewayRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/inv-1/payments", bytes.NewBufferString(`{"provider_payload":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PAYMENT_NOT_FOUND") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentHandler_ListByDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := paymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().ListByDocumentID(gomock.Any(), "inv-1").Return([]entities.Payment{
		{ID: "pay-1", DocumentID: "inv-1", Status: entities.PaymentStatusApproved},
		{ID: "pay-2", DocumentID: "inv-1", Status: entities.PaymentStatusDenied},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/inv-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(out) != 2 || out[0]["id"] != "pay-1" {
		t.Fatalf("unexpected response: %v", out)
	}
}
