package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestKanbanUseCase_CreateColumn(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewKanbanUseCase(nil, nil, nil, nil)
		if _, err := uc.CreateColumn(context.Background(), "  "); !errors.Is(err, ErrInvalidColumnTitle) {
			t.Fatalf("expected ErrInvalidColumnTitle, got %v", err)
		}
	})

	t.Run("slug and position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewKanbanUseCase(columns, nil, nil, nil)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		columns.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.KanbanColumn{})).DoAndReturn(
			func(_ context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
				if c.Slug != "aguardando_peca" || c.Title != "Aguardando Peça" || c.Position != 90 {
					t.Fatalf("unexpected column: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.CreateColumn(context.Background(), " Aguardando Peça "); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("slug collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewKanbanUseCase(columns, nil, nil, nil)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		columns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.KanbanColumn{}, interfaces.ErrAlreadyExists)

		if _, err := uc.CreateColumn(context.Background(), "Teste"); !errors.Is(err, ErrColumnAlreadyExists) {
			t.Fatalf("expected ErrColumnAlreadyExists, got %v", err)
		}
	})
}

func TestKanbanUseCase_RenameColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
	uc := NewKanbanUseCase(columns, nil, nil, nil)

	columns.EXPECT().UpdateTitle(gomock.Any(), "testing", "Testes").Return(entities.KanbanColumn{Slug: "testing", Title: "Testes"}, nil)
	columns.EXPECT().UpdateTitle(gomock.Any(), "gone", "X").Return(entities.KanbanColumn{}, nil)

	res, err := uc.RenameColumn(context.Background(), "testing", " Testes ")
	if err != nil || res.Slug != "testing" {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if _, err := uc.RenameColumn(context.Background(), "gone", "X"); !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestKanbanUseCase_MoveColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
	uc := NewKanbanUseCase(columns, nil, nil, nil)

	columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
	persisted := map[string]int{}
	columns.EXPECT().UpdatePosition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, slug string, position int) (entities.KanbanColumn, error) {
			persisted[slug] = position
			return entities.KanbanColumn{Slug: slug, Position: position}, nil
		},
	).Times(3)

	ordered, err := uc.MoveColumn(context.Background(), "finished", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ordered) != 3 || ordered[0].Slug != "finished" || ordered[1].Slug != "received" || ordered[2].Slug != "testing" {
		t.Fatalf("unexpected order: %+v", ordered)
	}
	if persisted["finished"] != 10 || persisted["received"] != 20 || persisted["testing"] != 30 {
		t.Fatalf("unexpected persisted positions: %v", persisted)
	}
}

func TestKanbanUseCase_DeleteColumn(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewKanbanUseCase(columns, orders, nil, nil)

		columns.EXPECT().Get(gomock.Any(), "testing").Return(entities.KanbanColumn{Slug: "testing"}, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), "testing").Return([]entities.ServiceOrder{{ID: "o-1"}}, nil)

		if err := uc.DeleteColumn(context.Background(), "testing"); !errors.Is(err, ErrColumnInUse) {
			t.Fatalf("expected ErrColumnInUse, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewKanbanUseCase(columns, nil, nil, nil)

		columns.EXPECT().Get(gomock.Any(), "gone").Return(entities.KanbanColumn{}, nil)

		if err := uc.DeleteColumn(context.Background(), "gone"); !errors.Is(err, ErrColumnNotFound) {
			t.Fatalf("expected ErrColumnNotFound, got %v", err)
		}
	})

	t.Run("empty column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewKanbanUseCase(columns, orders, nil, nil)

		columns.EXPECT().Get(gomock.Any(), "testing").Return(entities.KanbanColumn{Slug: "testing"}, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), "testing").Return([]entities.ServiceOrder{}, nil)
		columns.EXPECT().Delete(gomock.Any(), "testing").Return(true, nil)

		if err := uc.DeleteColumn(context.Background(), "testing"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestKanbanUseCase_Board(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	technicians := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := NewKanbanUseCase(columns, orders, customers, technicians)

	columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
	orders.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{
		{ID: "o-1", CustomerID: "c-1", CurrentStatus: "testing"},
		{ID: "o-2", CustomerID: "c-1", CurrentStatus: "archived"},
	}, nil)
	customers.EXPECT().List(gomock.Any()).Return([]entities.Customer{{ID: "c-1", Name: "Ana"}}, nil)
	technicians.EXPECT().List(gomock.Any()).Return([]entities.Technician{}, nil)

	board, err := uc.Board(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if board.Total != 2 || len(board.Columns) != 3 || len(board.Orphans) != 1 || board.Orphans[0].ID != "o-2" {
		t.Fatalf("unexpected board: %+v", board)
	}
	if board.Columns[1].Column.Slug != "testing" || board.Columns[1].Count != 1 || board.Columns[1].Orders[0].CustomerName != "Ana" {
		t.Fatalf("unexpected testing bucket: %+v", board.Columns[1])
	}
}

func TestKanbanUseCase_SeedDefaults(t *testing.T) {
	t.Run("skips when columns exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewKanbanUseCase(columns, nil, nil, nil)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)

		n, err := uc.SeedDefaults(context.Background())
		if err != nil || n != 0 {
			t.Fatalf("unexpected result: %d err=%v", n, err)
		}
	})

	t.Run("seeds empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewKanbanUseCase(columns, nil, nil, nil)

		columns.EXPECT().List(gomock.Any()).Return([]entities.KanbanColumn{}, nil)
		columns.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) { return c, nil },
		).Times(8)

		n, err := uc.SeedDefaults(context.Background())
		if err != nil || n != 8 {
			t.Fatalf("unexpected result: %d err=%v", n, err)
		}
	})
}
