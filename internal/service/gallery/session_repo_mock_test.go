package gallery

import (
	"context"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetFunc           func(ctx context.Context, token string) (*domain.Session, error)
	UpdateFunc        func(ctx context.Context, sess *domain.Session) error
	ClearOpenItemFunc func(ctx context.Context, itemID string) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			Token string
		}
		Update []struct {
			Ctx  context.Context
			Sess *domain.Session
		}
		ClearOpenItem []struct {
			Ctx    context.Context
			ItemID string
		}
	}
	lockGet           sync.RWMutex
	lockUpdate        sync.RWMutex
	lockClearOpenItem sync.RWMutex
}

func (mock *sessionRepoMock) Get(ctx context.Context, token string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionRepoMock.GetFunc: method is nil but sessionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, token)
}

func (mock *sessionRepoMock) GetCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *sessionRepoMock) Update(ctx context.Context, sess *domain.Session) error {
	if mock.UpdateFunc == nil {
		panic("sessionRepoMock.UpdateFunc: method is nil but sessionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess *domain.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, sess)
}

func (mock *sessionRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Sess *domain.Session
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *sessionRepoMock) ClearOpenItem(ctx context.Context, itemID string) error {
	if mock.ClearOpenItemFunc == nil {
		panic("sessionRepoMock.ClearOpenItemFunc: method is nil but sessionRepo.ClearOpenItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID string
	}{Ctx: ctx, ItemID: itemID}
	mock.lockClearOpenItem.Lock()
	mock.calls.ClearOpenItem = append(mock.calls.ClearOpenItem, callInfo)
	mock.lockClearOpenItem.Unlock()
	return mock.ClearOpenItemFunc(ctx, itemID)
}

func (mock *sessionRepoMock) ClearOpenItemCalls() []struct {
	Ctx    context.Context
	ItemID string
} {
	mock.lockClearOpenItem.RLock()
	defer mock.lockClearOpenItem.RUnlock()
	return mock.calls.ClearOpenItem
}
