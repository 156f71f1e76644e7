package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/catalog"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/intake"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestIntakeHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("step outside range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/intake/validate", h.Validate)

		uc.EXPECT().ValidateStep(gomock.Any(), 4, gomock.Any()).Return(intake.Result{}, intake.ErrInvalidStep)

		req := httptest.NewRequest(http.MethodPost, "/intake/validate", bytes.NewBufferString(`{"step":4,"draft":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issues are a 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/intake/validate", h.Validate)

		uc.EXPECT().ValidateStep(gomock.Any(), 1, gomock.Any()).Return(intake.Result{
			Step:   1,
			Issues: []intake.Issue{{Field: "new_customer.whatsapp", Message: "obrigatório"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/intake/validate", bytes.NewBufferString(`{"step":1,"draft":{"new_customer":{"name":"Ana"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got intake.Result
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.Valid || len(got.Issues) != 1 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestIntakeHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incomplete draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/intake/orders", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.IntakeResult{}, &usecase.IntakeValidationError{
			Result: intake.Result{Step: 2, Issues: []intake.Issue{{Field: "equipment_model", Message: "obrigatório"}}},
		})

		req := httptest.NewRequest(http.MethodPost, "/intake/orders", bytes.NewBufferString(`{"customer_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code   string        `json:"code"`
			Result intake.Result `json:"result"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "INTAKE_INCOMPLETE" || body.Result.Step != 2 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/intake/orders", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.IntakeResult{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/intake/orders", bytes.NewBufferString(`{"customer_id":"c-404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntakeUseCase(ctrl)
		h := NewIntakeHandler(uc)

		r := gin.New()
		r.POST("/intake/orders", h.Submit)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.IntakeResult{
			Order:                 entities.ServiceOrder{ID: "o-1", CurrentStatus: "received"},
			Customer:              entities.Customer{ID: "c-1"},
			LinkedAttachmentIDs:   []string{"a-1"},
			UnlinkedAttachmentIDs: []string{},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/intake/orders", bytes.NewBufferString(`{"customer_id":"c-1","attachment_ids":["a-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestIntakeHandler_Equipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIIntakeUseCase(ctrl)
	h := NewIntakeHandler(uc)

	r := gin.New()
	r.GET("/catalog/equipment", h.Equipment)

	uc.EXPECT().Equipment().Return(catalog.MustLoad())

	req := httptest.NewRequest(http.MethodGet, "/catalog/equipment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
