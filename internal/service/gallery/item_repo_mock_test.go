package gallery

import (
	"context"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	InsertFunc        func(ctx context.Context, item *domain.GalleryItem) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.GalleryItem, error)
	UpdateFunc        func(ctx context.Context, item *domain.GalleryItem) error
	DeleteFunc        func(ctx context.Context, id string) error
	ListPublicFunc    func(ctx context.Context) ([]domain.GalleryItem, error)
	ListByAuthorFunc  func(ctx context.Context, authorID string) ([]domain.GalleryItem, error)
	CountByAuthorFunc func(ctx context.Context, authorID string) (int, error)

	calls struct {
		Insert []struct {
			Ctx  context.Context
			Item *domain.GalleryItem
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Update []struct {
			Ctx  context.Context
			Item *domain.GalleryItem
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		ListPublic []struct {
			Ctx context.Context
		}
		ListByAuthor []struct {
			Ctx      context.Context
			AuthorID string
		}
		CountByAuthor []struct {
			Ctx      context.Context
			AuthorID string
		}
	}
	lockInsert        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockListPublic    sync.RWMutex
	lockListByAuthor  sync.RWMutex
	lockCountByAuthor sync.RWMutex
}

func (mock *itemRepoMock) Insert(ctx context.Context, item *domain.GalleryItem) error {
	if mock.InsertFunc == nil {
		panic("itemRepoMock.InsertFunc: method is nil but itemRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.GalleryItem
	}{Ctx: ctx, Item: item}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, item)
}

func (mock *itemRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Item *domain.GalleryItem
} {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id string) (*domain.GalleryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *itemRepoMock) Update(ctx context.Context, item *domain.GalleryItem) error {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.GalleryItem
	}{Ctx: ctx, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Item *domain.GalleryItem
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *itemRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *itemRepoMock) ListPublic(ctx context.Context) ([]domain.GalleryItem, error) {
	if mock.ListPublicFunc == nil {
		panic("itemRepoMock.ListPublicFunc: method is nil but itemRepo.ListPublic was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPublic.Lock()
	mock.calls.ListPublic = append(mock.calls.ListPublic, callInfo)
	mock.lockListPublic.Unlock()
	return mock.ListPublicFunc(ctx)
}

func (mock *itemRepoMock) ListPublicCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPublic.RLock()
	defer mock.lockListPublic.RUnlock()
	return mock.calls.ListPublic
}

func (mock *itemRepoMock) ListByAuthor(ctx context.Context, authorID string) ([]domain.GalleryItem, error) {
	if mock.ListByAuthorFunc == nil {
		panic("itemRepoMock.ListByAuthorFunc: method is nil but itemRepo.ListByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID string
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockListByAuthor.Lock()
	mock.calls.ListByAuthor = append(mock.calls.ListByAuthor, callInfo)
	mock.lockListByAuthor.Unlock()
	return mock.ListByAuthorFunc(ctx, authorID)
}

func (mock *itemRepoMock) ListByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID string
} {
	mock.lockListByAuthor.RLock()
	defer mock.lockListByAuthor.RUnlock()
	return mock.calls.ListByAuthor
}

func (mock *itemRepoMock) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	if mock.CountByAuthorFunc == nil {
		panic("itemRepoMock.CountByAuthorFunc: method is nil but itemRepo.CountByAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID string
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockCountByAuthor.Lock()
	mock.calls.CountByAuthor = append(mock.calls.CountByAuthor, callInfo)
	mock.lockCountByAuthor.Unlock()
	return mock.CountByAuthorFunc(ctx, authorID)
}

func (mock *itemRepoMock) CountByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID string
} {
	mock.lockCountByAuthor.RLock()
	defer mock.lockCountByAuthor.RUnlock()
	return mock.calls.CountByAuthor
}
