package session

import (
	"context"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, user *domain.RegisteredUser) error
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.RegisteredUser, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.RegisteredUser, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.RegisteredUser
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate        sync.RWMutex
	lockGetByUsername sync.RWMutex
	lockGetByID       sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.RegisteredUser) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.RegisteredUser
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.RegisteredUser
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.RegisteredUser, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	defer mock.lockGetByUsername.RUnlock()
	return mock.calls.GetByUsername
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.RegisteredUser, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}
