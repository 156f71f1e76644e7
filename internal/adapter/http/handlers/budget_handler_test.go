package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func pendingBudget() entities.Budget {
	now := time.Now().UTC()
	return entities.Budget{
		ID:             "o-1",
		ServiceOrderID: "o-1",
		Status:         entities.BudgetStatusPending,
		LaborCost:      50,
		Items: []entities.BudgetItem{
			{ID: "i-1", BudgetID: "o-1", Description: "Rolamento 6202", Price: 15.5, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBudgetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("labor as string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/orders/:id/budget", h.Create)

		uc.EXPECT().Create(gomock.Any(), "o-1", 50.0).Return(pendingBudget(), nil)

		req := httptest.NewRequest(http.MethodPost, "/orders/o-1/budget", bytes.NewBufferString(`{"labor_cost":"50"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got response.BudgetResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.Total != 65.5 || got.ItemsTotal != 15.5 {
			t.Fatalf("unexpected totals: %+v", got)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/orders/:id/budget", h.Create)

		uc.EXPECT().Create(gomock.Any(), "o-1", 0.0).Return(entities.Budget{}, usecase.ErrBudgetAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/orders/o-1/budget", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("part reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/budgets/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "o-1", usecase.BudgetItemInput{PartID: "p-1"}).Return(pendingBudget(), nil)

		req := httptest.NewRequest(http.MethodPost, "/budgets/o-1/items", bytes.NewBufferString(`{"part_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/budgets/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "o-1", gomock.Any()).Return(entities.Budget{}, usecase.ErrBudgetNotPending)

		req := httptest.NewRequest(http.MethodPost, "/budgets/o-1/items", bytes.NewBufferString(`{"description":"Escova","price":"12,5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"BUDGET_NOT_PENDING"`)) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestBudgetHandler_Decide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/budgets/:id/approve", h.Approve)

		b := pendingBudget()
		b.Status = entities.BudgetStatusApproved
		uc.EXPECT().Approve(gomock.Any(), "o-1").Return(b, nil)

		req := httptest.NewRequest(http.MethodPost, "/budgets/o-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/budgets/:id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), "o-1").Return(entities.Budget{}, usecase.ErrBudgetNotPending)

		req := httptest.NewRequest(http.MethodPost, "/budgets/o-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.DELETE("/budgets/:id/items/:item_id", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "o-1", "i-9").Return(entities.Budget{}, usecase.ErrBudgetItemNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/budgets/o-1/items/i-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
