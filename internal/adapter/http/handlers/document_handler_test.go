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
	"convoyage/internal/domain/form"
	"convoyage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func documentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/documents/quotes", h.CreateQuote)
	r.GET("/v1/documents/:id", h.GetByID)
	r.GET("/v1/documents", h.ListByOwner)
	r.PATCH("/v1/documents/:id/accept", h.AcceptQuote)
	r.POST("/v1/documents/:id/convert", h.ConvertQuote)
	r.GET("/v1/documents/:id/render", h.Render)
	r.POST("/v1/documents/:id/export", h.Export)
	return r
}

func sampleDocument() entities.BillingDocument {
	return entities.BillingDocument{
		ID:      "q-1",
		OwnerID: "user-1",
		Kind:    entities.DocumentKindQuote,
		Number:  "DEV-2026-0001",

		ClientName: "Dupont",

		Items: []entities.LineItem{
			{Description: "Convoyage", Quantity: 1, UnitPriceCents: 45000, LineTotalCents: 45000},
		},
		TaxRatePercent: 20,
		SubtotalCents:  45000,
		TaxCents:       9000,
		TotalCents:     54000,

		Status:   entities.DocumentStatusIssued,
		IssuedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestDocumentHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/quotes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		body := `{"client_name":"Dupont","items":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/documents/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		uc.EXPECT().CreateQuote(gomock.Any(), "user-1", gomock.Any(), gomock.Any(), int64(20), "note").DoAndReturn(
			func(_ interface{}, _ string, client form.ContactGroup, items []form.LineItemInput, _ int64, _ string) (entities.BillingDocument, error) {
				if client.Name != "Dupont" || len(items) != 1 {
					t.Fatalf("unexpected binding: %+v %+v", client, items)
				}
				return sampleDocument(), nil
			},
		)

		body := `{"client_name":"Dupont","items":[{"description":"Convoyage","quantity":1,"unit_price":"450.00"}],"notes":"note"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/documents/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["number"] != "DEV-2026-0001" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestDocumentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.BillingDocument{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/documents/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_ConvertQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not accepted is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		uc.EXPECT().ConvertQuoteToInvoice(gomock.Any(), "q-1").Return(entities.BillingDocument{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, nil))

		inv := sampleDocument()
		inv.ID = "inv-1"
		inv.Kind = entities.DocumentKindInvoice
		inv.Number = "FAC-2026-0003"
		inv.SourceQuoteID = "q-1"
		uc.EXPECT().ConvertQuoteToInvoice(gomock.Any(), "q-1").Return(inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "FAC-2026-0003") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_Render(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
	export := mocks.NewMockIDocumentExportUseCase(ctrl)
	r := documentRouter(NewDocumentHandler(uc, export))

	export.EXPECT().RenderDocument(gomock.Any(), "q-1").Return("<html>Devis</html>", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/q-1/render", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
}

func TestDocumentHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("export failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		export := mocks.NewMockIDocumentExportUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, export))

		export.EXPECT().ExportDocument(gomock.Any(), "q-1").Return(usecase.ExportResult{}, usecase.ErrExportFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/q-1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("signed url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingDocumentUseCase(ctrl)
		export := mocks.NewMockIDocumentExportUseCase(ctrl)
		r := documentRouter(NewDocumentHandler(uc, export))

		export.EXPECT().ExportDocument(gomock.Any(), "q-1").Return(usecase.ExportResult{
			Key: "documents/user-1/DEV-2026-0001.html", SignedURL: "https://signed",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/q-1/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "https://signed") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
