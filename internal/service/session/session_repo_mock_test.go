package session

import (
	"context"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc func(ctx context.Context, sess *domain.Session) error
	GetFunc    func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFunc func(ctx context.Context, token string) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Sess *domain.Session
		}
		Get []struct {
			Ctx   context.Context
			Token string
		}
		Delete []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, sess *domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess *domain.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sess)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Sess *domain.Session
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
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

func (mock *sessionRepoMock) Delete(ctx context.Context, token string) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, token)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
