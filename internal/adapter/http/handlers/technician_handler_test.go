package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTechnicianHandler_SetActive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.PUT("/technicians/:id/active", h.SetActive)

		req := httptest.NewRequest(http.MethodPut, "/technicians/t-1/active", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.PUT("/technicians/:id/active", h.SetActive)

		uc.EXPECT().SetActive(gomock.Any(), "t-1", false).Return(entities.Technician{ID: "t-1", Name: "João", Active: false}, nil)

		req := httptest.NewRequest(http.MethodPut, "/technicians/t-1/active", bytes.NewBufferString(`{"active":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTechnicianHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITechnicianUseCase(ctrl)
		h := NewTechnicianHandler(uc)

		r := gin.New()
		r.DELETE("/technicians/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "t-1").Return(usecase.ErrTechnicianInUse)

		req := httptest.NewRequest(http.MethodDelete, "/technicians/t-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
