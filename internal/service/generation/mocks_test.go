package generation

import (
	"context"
	"sync"

	"github.com/artfox/nanogallery-backend/internal/domain"
	"github.com/artfox/nanogallery-backend/internal/service/gallery"
)

var _ imageProvider = &imageProviderMock{}

type imageProviderMock struct {
	GenerateFunc  func(ctx context.Context, req domain.GenerationRequest) (string, error)
	OptimizeFunc  func(ctx context.Context, prompt string) (string, error)
	TranslateFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req domain.GenerationRequest
		}
		Optimize []struct {
			Ctx    context.Context
			Prompt string
		}
		Translate []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerate  sync.RWMutex
	lockOptimize  sync.RWMutex
	lockTranslate sync.RWMutex
}

func (mock *imageProviderMock) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if mock.GenerateFunc == nil {
		panic("imageProviderMock.GenerateFunc: method is nil but imageProvider.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.GenerationRequest
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *imageProviderMock) GenerateCalls() []struct {
	Ctx context.Context
	Req domain.GenerationRequest
} {
	mock.lockGenerate.RLock()
	defer mock.lockGenerate.RUnlock()
	return mock.calls.Generate
}

func (mock *imageProviderMock) Optimize(ctx context.Context, prompt string) (string, error) {
	if mock.OptimizeFunc == nil {
		panic("imageProviderMock.OptimizeFunc: method is nil but imageProvider.Optimize was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockOptimize.Lock()
	mock.calls.Optimize = append(mock.calls.Optimize, callInfo)
	mock.lockOptimize.Unlock()
	return mock.OptimizeFunc(ctx, prompt)
}

func (mock *imageProviderMock) OptimizeCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockOptimize.RLock()
	defer mock.lockOptimize.RUnlock()
	return mock.calls.Optimize
}

func (mock *imageProviderMock) Translate(ctx context.Context, prompt string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("imageProviderMock.TranslateFunc: method is nil but imageProvider.Translate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, prompt)
}

func (mock *imageProviderMock) TranslateCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockTranslate.RLock()
	defer mock.lockTranslate.RUnlock()
	return mock.calls.Translate
}

var _ gallerySaver = &gallerySaverMock{}

type gallerySaverMock struct {
	SaveCreationFunc func(ctx context.Context, input gallery.SaveInput) (*gallery.ItemResult, error)

	calls struct {
		SaveCreation []struct {
			Ctx   context.Context
			Input gallery.SaveInput
		}
	}
	lockSaveCreation sync.RWMutex
}

func (mock *gallerySaverMock) SaveCreation(ctx context.Context, input gallery.SaveInput) (*gallery.ItemResult, error) {
	if mock.SaveCreationFunc == nil {
		panic("gallerySaverMock.SaveCreationFunc: method is nil but gallerySaver.SaveCreation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input gallery.SaveInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveCreation.Lock()
	mock.calls.SaveCreation = append(mock.calls.SaveCreation, callInfo)
	mock.lockSaveCreation.Unlock()
	return mock.SaveCreationFunc(ctx, input)
}

func (mock *gallerySaverMock) SaveCreationCalls() []struct {
	Ctx   context.Context
	Input gallery.SaveInput
} {
	mock.lockSaveCreation.RLock()
	defer mock.lockSaveCreation.RUnlock()
	return mock.calls.SaveCreation
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.RegisteredUser, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
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

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetFunc    func(ctx context.Context, token string) (*domain.Session, error)
	UpdateFunc func(ctx context.Context, sess *domain.Session) error

	calls struct {
		Get []struct {
			Ctx   context.Context
			Token string
		}
		Update []struct {
			Ctx  context.Context
			Sess *domain.Session
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
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
