package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPartUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartRepository(ctrl)
	uc := NewPartUseCase(repo)

	parts := func() []entities.Part {
		return []entities.Part{
			{ID: "1", Code: "VL-01", Description: "Vela de ignição", Brand: "NGK"},
			{ID: "2", Code: "FA-10", Description: "Filtro de ar", Brand: "Stihl"},
			{ID: "3", Code: "CR-22", Description: "Corrente", Brand: "Oregon"},
		}
	}
	repo.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]entities.Part, error) { return parts(), nil }).Times(2)

	all, err := uc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 3 || all[0].ID != "3" || all[1].ID != "2" || all[2].ID != "1" {
		t.Fatalf("unexpected order: %+v", all)
	}

	filtered, err := uc.List(context.Background(), " stihl ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != "2" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}
}

func TestPartUseCase_Create(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc := NewPartUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Part{Description: "Filtro", DefaultPrice: -1})
		if !errors.Is(err, ErrInvalidPart) {
			t.Fatalf("expected ErrInvalidPart, got %v", err)
		}
	})

	t.Run("price rounded to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) { return p, nil },
		)

		res, err := uc.Create(context.Background(), entities.Part{Description: "Filtro", DefaultPrice: 10.005})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.DefaultPrice != entities.RoundCents(10.005) || res.ID == "" {
			t.Fatalf("unexpected part: %+v", res)
		}
	})
}
