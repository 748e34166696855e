package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"convoyage/internal/adapter/http/handlers/mocks"
	"convoyage/internal/domain/entities"
	"convoyage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func missionRouter(h *MissionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/missions", h.ListByOwner)
	r.GET("/v1/missions/:id", h.GetByID)
	r.PATCH("/v1/missions/:id/assign", h.Assign)
	r.PATCH("/v1/missions/:id/cancel", h.Cancel)
	r.GET("/v1/missions/:id/sheet", h.RenderSheet)
	return r
}

func sampleMission() entities.Mission {
	return entities.Mission{
		ID:      "m-1",
		OwnerID: "user-1",

		ClientName:   "Dupont",
		VehicleBrand: "Renault",
		VehicleModel: "Kangoo",
		LicensePlate: "AB-123-CD",

		Departure: entities.Leg{City: "Lyon"},
		Arrival:   entities.Leg{City: "Marseille"},

		Priority: entities.MissionPriorityNormal,
		Status:   entities.MissionStatusPending,
	}
}

func TestMissionHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), "m-1").Return(sampleMission(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/missions/m-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["license_plate"] != "AB-123-CD" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Mission{}, usecase.ErrMissionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/missions/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "MISSION_NOT_FOUND") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMissionHandler_ListByOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		req := httptest.NewRequest(http.MethodGet, "/v1/missions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("owner scoped list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		uc.EXPECT().ListByOwnerID(gomock.Any(), "user-1").Return([]entities.Mission{sampleMission()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/missions", nil)
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(out) != 1 || out[0]["id"] != "m-1" {
			t.Fatalf("unexpected response: %v", out)
		}
	})
}

func TestMissionHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		m := sampleMission()
		m.Status = entities.MissionStatusAssigned
		uc.EXPECT().Assign(gomock.Any(), "m-1").Return(m, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/missions/m-1/assign", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"assigned"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel ghost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMissionUseCase(ctrl)
		r := missionRouter(NewMissionHandler(uc, nil))

		uc.EXPECT().Cancel(gomock.Any(), "ghost").Return(entities.Mission{}, usecase.ErrMissionNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/missions/ghost/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMissionHandler_RenderSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMissionUseCase(ctrl)
	export := mocks.NewMockIDocumentExportUseCase(ctrl)
	r := missionRouter(NewMissionHandler(uc, export))

	export.EXPECT().RenderMissionSheet(gomock.Any(), "m-1").Return("<html>Ordre de mission</html>", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/missions/m-1/sheet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), "Ordre de mission") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
