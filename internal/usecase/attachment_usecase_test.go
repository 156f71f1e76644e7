package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func photoUpload(orderID, step string) UploadInput {
	return UploadInput{
		MediaUpload: interfaces.MediaUpload{
			Body:        strings.NewReader("jpeg"),
			Size:        4,
			Filename:    "frente.jpg",
			ContentType: "image/jpeg",
		},
		OrderID:   orderID,
		Step:      step,
		MediaType: entities.MediaTypePhoto,
	}
}

func TestAttachmentUseCase_Upload(t *testing.T) {
	t.Run("invalid media type", func(t *testing.T) {
		uc := NewAttachmentUseCase(nil, nil, nil, nil)
		in := photoUpload("", "")
		in.MediaType = "audio"
		if _, err := uc.Upload(context.Background(), in); !errors.Is(err, ErrInvalidMediaType) {
			t.Fatalf("expected ErrInvalidMediaType, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		uc := NewAttachmentUseCase(nil, nil, nil, nil)
		in := photoUpload("", "")
		in.Size = 0
		if _, err := uc.Upload(context.Background(), in); !errors.Is(err, ErrEmptyUpload) {
			t.Fatalf("expected ErrEmptyUpload, got %v", err)
		}
	})

	t.Run("draft defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, columns, media)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		media.EXPECT().Upload(gomock.Any(), gomock.AssignableToTypeOf(interfaces.MediaUpload{})).DoAndReturn(
			func(_ context.Context, in interfaces.MediaUpload) (interfaces.StoredMedia, error) {
				if in.Folder != "drafts" {
					t.Fatalf("expected drafts folder, got %q", in.Folder)
				}
				return interfaces.StoredMedia{URL: "https://cdn/x.jpg", Path: "drafts/x.jpg", Provider: entities.StorageProviderObject}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Attachment{})).DoAndReturn(
			func(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
				if a.ServiceOrderID != "" || a.Step != "received" || a.StoragePath != "drafts/x.jpg" || a.URL != "https://cdn/x.jpg" {
					t.Fatalf("unexpected attachment: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.Upload(context.Background(), photoUpload("", "")); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("order step and folder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, orders, columns, media)

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.ServiceOrder{ID: "o-1", CurrentStatus: "testing"}, nil)
		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		media.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in interfaces.MediaUpload) (interfaces.StoredMedia, error) {
				if in.Folder != "orders/o-1" {
					t.Fatalf("unexpected folder %q", in.Folder)
				}
				return interfaces.StoredMedia{Path: "orders/o-1/x.jpg", Provider: entities.StorageProviderObject}, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
				if a.ServiceOrderID != "o-1" || a.Step != "testing" {
					t.Fatalf("unexpected attachment: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.Upload(context.Background(), photoUpload("o-1", "")); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("unknown step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		uc := NewAttachmentUseCase(nil, nil, columns, nil)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)

		if _, err := uc.Upload(context.Background(), photoUpload("", "nowhere")); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}
	})

	t.Run("record failure removes stored object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, columns, media)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		media.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(interfaces.StoredMedia{Path: "drafts/x.jpg", Provider: entities.StorageProviderObject}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Attachment{}, errors.New("db"))
		media.EXPECT().Delete(gomock.Any(), "drafts/x.jpg", entities.StorageProviderObject).Return(nil)

		if _, err := uc.Upload(context.Background(), photoUpload("", "")); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestAttachmentUseCase_AddLink(t *testing.T) {
	t.Run("invalid link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(nil, nil, columns, media)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		media.EXPECT().ProcessExternalLink(gomock.Any(), "nope", entities.StorageProviderYouTube).Return(interfaces.StoredMedia{}, interfaces.ErrInvalidMediaLink)

		if _, err := uc.AddLink(context.Background(), LinkInput{URL: "nope"}); !errors.Is(err, interfaces.ErrInvalidMediaLink) {
			t.Fatalf("expected ErrInvalidMediaLink, got %v", err)
		}
	})

	t.Run("video link stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		columns := mock_interfaces.NewMockIKanbanColumnRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, columns, media)

		columns.EXPECT().List(gomock.Any()).Return(testColumns(), nil)
		media.EXPECT().ProcessExternalLink(gomock.Any(), "https://youtu.be/abc", entities.StorageProviderYouTube).Return(
			interfaces.StoredMedia{URL: "https://www.youtube.com/embed/abc", Provider: entities.StorageProviderYouTube}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
				if a.MediaType != entities.MediaTypeVideo || a.Provider != entities.StorageProviderYouTube || a.Step != "testing" {
					t.Fatalf("unexpected attachment: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.AddLink(context.Background(), LinkInput{URL: "https://youtu.be/abc", Step: "testing"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAttachmentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		uc := NewAttachmentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Attachment{}, nil)

		if err := uc.Delete(context.Background(), "a-1"); !errors.Is(err, ErrAttachmentNotFound) {
			t.Fatalf("expected ErrAttachmentNotFound, got %v", err)
		}
	})

	t.Run("record then object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, nil, media)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Attachment{ID: "a-1", StoragePath: "p", Provider: entities.StorageProviderObject}, nil),
			repo.EXPECT().Delete(gomock.Any(), "a-1").Return(true, nil),
			media.EXPECT().Delete(gomock.Any(), "p", entities.StorageProviderObject).Return(nil),
		)

		if err := uc.Delete(context.Background(), "a-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("record delete fails keeps object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, nil, media)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Attachment{ID: "a-1", StoragePath: "p", Provider: entities.StorageProviderObject}, nil)
		repo.EXPECT().Delete(gomock.Any(), "a-1").Return(false, errors.New("db down"))
		media.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		if err := uc.Delete(context.Background(), "a-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("object delete failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		media := mock_interfaces.NewMockIMediaGateway(ctrl)
		uc := NewAttachmentUseCase(repo, nil, nil, media)

		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Attachment{ID: "a-1", StoragePath: "p", Provider: entities.StorageProviderObject}, nil)
		repo.EXPECT().Delete(gomock.Any(), "a-1").Return(true, nil)
		media.EXPECT().Delete(gomock.Any(), "p", entities.StorageProviderObject).Return(errors.New("s3 down"))

		if err := uc.Delete(context.Background(), "a-1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}
