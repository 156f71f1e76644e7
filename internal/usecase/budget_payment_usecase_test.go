package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedBudget() entities.Budget {
	return entities.Budget{
		ID:        "os-1",
		Status:    entities.BudgetStatusApproved,
		LaborCost: 40,
		Items:     []entities.BudgetItem{{ID: "i-1", Price: 25.5}},
	}
}

func TestBudgetPaymentUseCase_Charge_Validation(t *testing.T) {
	t.Run("invalid budget id", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.Charge(context.Background(), "  ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentBudgetID) {
			t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBudgetPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetPaymentUseCase(nil, budgets, nil, PaymentOptions{Mock: true})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.Budget{}, nil)

		if _, err := uc.Charge(context.Background(), "os-1", nil); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("budget not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetPaymentUseCase(nil, budgets, nil, PaymentOptions{Mock: true})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.Budget{ID: "os-1", Status: entities.BudgetStatusPending}, nil)

		if _, err := uc.Charge(context.Background(), "os-1", nil); !errors.Is(err, ErrBudgetNotApproved) {
			t.Fatalf("expected ErrBudgetNotApproved, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(nil, budgets, gateway, PaymentOptions{})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(approvedBudget(), nil)

		if _, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"payer":{"email":"a@b.com"}}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBudgetPaymentUseCase_Charge_Mock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetPaymentUseCase(repo, budgets, nil, PaymentOptions{Mock: true})

	budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(approvedBudget(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetPayment{})).DoAndReturn(
		func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
			if p.ID == "" || p.BudgetID != "os-1" || p.Amount != 65.5 || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.MPPayload["transaction_amount"] != 65.5 || p.MPPayload["external_reference"] != "os-1" {
				t.Fatalf("unexpected provider payload: %+v", p.MPPayload)
			}
			return p, nil
		},
	)

	res, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"transaction_amount": 1}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Amount != 65.5 {
		t.Fatalf("expected computed amount, got %v", res.Amount)
	}
}

func TestBudgetPaymentUseCase_Charge_Gateway(t *testing.T) {
	t.Run("sandbox defaults and amount override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgets, gateway, PaymentOptions{AccessToken: "TEST-123"})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if m["transaction_amount"] != 65.5 || m["external_reference"] != "os-1" {
					t.Fatalf("unexpected payload: %s", payload)
				}
				payer, _ := m["payer"].(map[string]any)
				if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
					t.Fatalf("unexpected payer: %+v", payer)
				}
				return "123", "in_process", json.RawMessage(`{"id":123,"status":"in_process"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) { return p, nil },
		)

		res, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":999}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.ID != "123" || res.Status != entities.PaymentStatusPending || res.Amount != 65.5 {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})

	t.Run("sandbox payer id mapped to email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(repo, budgets, gateway, PaymentOptions{
			AccessToken:     "TEST-123",
			TestPayerEmail:  "buyer@testuser.com",
			TestPayerUserID: "987",
		})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				_ = json.Unmarshal(payload, &m)
				payer, _ := m["payer"].(map[string]any)
				if payer["email"] != "buyer@testuser.com" {
					t.Fatalf("expected mapped email, got %+v", payer)
				}
				if _, ok := payer["id"]; ok {
					t.Fatalf("expected payer id removed, got %+v", payer)
				}
				return "1", "approved", json.RawMessage(`{}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) { return p, nil },
		)

		if _, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"987"}}`)); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("gateway error classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBudgetPaymentUseCase(nil, budgets, gateway, PaymentOptions{AccessToken: "APP_USR-1"})

		budgets.EXPECT().GetByID(gomock.Any(), "os-1").Return(approvedBudget(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.Charge(context.Background(), "os-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.com"}}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestClassifyGatewayError(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{`{"message":"Customer not found"}`, ErrPaymentGatewayCustomerNotFound},
		{`{"cause":[{"code":2034}]}`, ErrPaymentGatewayInvalidUsers},
		{`{"error":"unauthorized"}`, ErrPaymentGatewayUnauthorized},
		{`{"error":"bad_request","status":400}`, ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		if got := classifyGatewayError(errors.New(tc.msg)); !errors.Is(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.msg, tc.want, got)
		}
	}

	other := errors.New("timeout")
	if got := classifyGatewayError(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}

func TestBudgetPaymentUseCase_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetPaymentRepository(ctrl)
	uc := NewBudgetPaymentUseCase(repo, nil, nil, PaymentOptions{})

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BudgetPayment{}, nil)
	repo.EXPECT().ListByBudgetID(gomock.Any(), "os-1").Return([]entities.BudgetPayment{{ID: "p-2"}}, nil)

	if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrBudgetPaymentNotFound) {
		t.Fatalf("expected ErrBudgetPaymentNotFound, got %v", err)
	}
	list, err := uc.ListByBudgetID(context.Background(), " os-1 ")
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}
	if _, err := uc.ListByBudgetID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentBudgetID) {
		t.Fatalf("expected ErrInvalidPaymentBudgetID, got %v", err)
	}
}
