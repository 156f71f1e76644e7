package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceOrderHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "o-1", "").Return(usecase.AdvanceResult{
			Order:    entities.ServiceOrder{ID: "o-1", CurrentStatus: "analysis"},
			Advanced: true,
			From:     "received",
			To:       "analysis",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/orders/o-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got usecase.AdvanceResult
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !got.Advanced || got.To != "analysis" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("with note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "o-1", "peça chegou").Return(usecase.AdvanceResult{Order: entities.ServiceOrder{ID: "o-1"}, From: "finished"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/orders/o-1/advance", bytes.NewBufferString(`{"note":"peça chegou"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "o-1", "").Return(usecase.AdvanceResult{}, usecase.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodPost, "/orders/o-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Move(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		body     string
		err      error
		expected int
	}{
		{name: "missing status", body: `{}`, expected: http.StatusBadRequest},
		{name: "unknown column", body: `{"status":"nowhere"}`, err: usecase.ErrUnknownStatus, expected: http.StatusUnprocessableEntity},
		{name: "concurrent change", body: `{"status":"testing"}`, err: usecase.ErrOrderStatusConflict, expected: http.StatusConflict},
		{name: "order not found", body: `{"status":"testing"}`, err: usecase.ErrOrderNotFound, expected: http.StatusNotFound},
		{name: "moved", body: `{"status":"testing","note":"pulando etapa"}`, expected: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIServiceOrderUseCase(ctrl)
			h := NewServiceOrderHandler(uc)

			r := gin.New()
			r.POST("/orders/:id/move", h.Move)

			if tc.expected != http.StatusBadRequest {
				uc.EXPECT().Move(gomock.Any(), "o-1", gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{ID: "o-1", CurrentStatus: "testing"}, tc.err)
			}

			req := httptest.NewRequest(http.MethodPost, "/orders/o-1/move", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.expected {
				t.Fatalf("expected %d, got %d", tc.expected, w.Code)
			}
		})
	}
}

func TestServiceOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := gin.New()
	r.GET("/orders", h.List)

	uc.EXPECT().List(gomock.Any(), usecase.OrderFilter{Status: "washing", Query: "makita"}).Return([]entities.ServiceOrderSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=washing&q=makita", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}

func TestServiceOrderHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/orders/export", h.Export)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("xlsx"))
			return err
		})
		uc.EXPECT().ExportContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		req := httptest.NewRequest(http.MethodGet, "/orders/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "xlsx" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
		if !strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="ordens-`) {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/orders/export", h.Export)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(io.ErrUnexpectedEOF)

		req := httptest.NewRequest(http.MethodGet, "/orders/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
