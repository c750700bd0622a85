package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListCategoriesFunc func(ctx context.Context) ([]domain.DomainCategory, error)
	CreateCategoryFunc func(ctx context.Context, name string) (*domain.DomainCategory, error)
	UpdateCategoryFunc func(ctx context.Context, id int64, name string) (*domain.DomainCategory, error)
	DeleteCategoryFunc func(ctx context.Context, id int64) error
	ListDomainsFunc    func(ctx context.Context) ([]domain.Domain, error)
	CreateDomainFunc   func(ctx context.Context, in catalog.CreateDomainInput) (*domain.Domain, error)
	UpdateDomainFunc   func(ctx context.Context, id int64, in catalog.UpdateDomainInput) (*domain.Domain, error)
	DeleteDomainFunc   func(ctx context.Context, id int64) error
	ExportDomainsFunc  func(ctx context.Context) ([]byte, error)

	calls struct {
		ListCategories []struct {
			Ctx context.Context
		}
		CreateCategory []struct {
			Ctx  context.Context
			Name string
		}
		UpdateCategory []struct {
			Ctx  context.Context
			ID   int64
			Name string
		}
		DeleteCategory []struct {
			Ctx context.Context
			ID  int64
		}
		ListDomains []struct {
			Ctx context.Context
		}
		CreateDomain []struct {
			Ctx context.Context
			In  catalog.CreateDomainInput
		}
		UpdateDomain []struct {
			Ctx context.Context
			ID  int64
			In  catalog.UpdateDomainInput
		}
		DeleteDomain []struct {
			Ctx context.Context
			ID  int64
		}
		ExportDomains []struct {
			Ctx context.Context
		}
	}
	lockListCategories sync.RWMutex
	lockCreateCategory sync.RWMutex
	lockUpdateCategory sync.RWMutex
	lockDeleteCategory sync.RWMutex
	lockListDomains    sync.RWMutex
	lockCreateDomain   sync.RWMutex
	lockUpdateDomain   sync.RWMutex
	lockDeleteDomain   sync.RWMutex
	lockExportDomains  sync.RWMutex
}

func (mock *catalogServiceMock) ListCategories(ctx context.Context) ([]domain.DomainCategory, error) {
	if mock.ListCategoriesFunc == nil {
		panic("catalogServiceMock.ListCategoriesFunc: method is nil but catalogService.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

func (mock *catalogServiceMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateCategory(ctx context.Context, name string) (*domain.DomainCategory, error) {
	if mock.CreateCategoryFunc == nil {
		panic("catalogServiceMock.CreateCategoryFunc: method is nil but catalogService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, name)
}

func (mock *catalogServiceMock) CreateCategoryCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateCategory(ctx context.Context, id int64, name string) (*domain.DomainCategory, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("catalogServiceMock.UpdateCategoryFunc: method is nil but catalogService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   int64
		Name string
	}{Ctx: ctx, ID: id, Name: name}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, id, name)
}

func (mock *catalogServiceMock) UpdateCategoryCalls() []struct {
	Ctx  context.Context
	ID   int64
	Name string
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteCategory(ctx context.Context, id int64) error {
	if mock.DeleteCategoryFunc == nil {
		panic("catalogServiceMock.DeleteCategoryFunc: method is nil but catalogService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	if mock.ListDomainsFunc == nil {
		panic("catalogServiceMock.ListDomainsFunc: method is nil but catalogService.ListDomains was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListDomains.Lock()
	mock.calls.ListDomains = append(mock.calls.ListDomains, callInfo)
	mock.lockListDomains.Unlock()
	return mock.ListDomainsFunc(ctx)
}

func (mock *catalogServiceMock) ListDomainsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListDomains.RLock()
	calls := mock.calls.ListDomains
	mock.lockListDomains.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateDomain(ctx context.Context, in catalog.CreateDomainInput) (*domain.Domain, error) {
	if mock.CreateDomainFunc == nil {
		panic("catalogServiceMock.CreateDomainFunc: method is nil but catalogService.CreateDomain was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  catalog.CreateDomainInput
	}{Ctx: ctx, In: in}
	mock.lockCreateDomain.Lock()
	mock.calls.CreateDomain = append(mock.calls.CreateDomain, callInfo)
	mock.lockCreateDomain.Unlock()
	return mock.CreateDomainFunc(ctx, in)
}

func (mock *catalogServiceMock) CreateDomainCalls() []struct {
	Ctx context.Context
	In  catalog.CreateDomainInput
} {
	mock.lockCreateDomain.RLock()
	calls := mock.calls.CreateDomain
	mock.lockCreateDomain.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpdateDomain(ctx context.Context, id int64, in catalog.UpdateDomainInput) (*domain.Domain, error) {
	if mock.UpdateDomainFunc == nil {
		panic("catalogServiceMock.UpdateDomainFunc: method is nil but catalogService.UpdateDomain was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		In  catalog.UpdateDomainInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockUpdateDomain.Lock()
	mock.calls.UpdateDomain = append(mock.calls.UpdateDomain, callInfo)
	mock.lockUpdateDomain.Unlock()
	return mock.UpdateDomainFunc(ctx, id, in)
}

func (mock *catalogServiceMock) UpdateDomainCalls() []struct {
	Ctx context.Context
	ID  int64
	In  catalog.UpdateDomainInput
} {
	mock.lockUpdateDomain.RLock()
	calls := mock.calls.UpdateDomain
	mock.lockUpdateDomain.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteDomain(ctx context.Context, id int64) error {
	if mock.DeleteDomainFunc == nil {
		panic("catalogServiceMock.DeleteDomainFunc: method is nil but catalogService.DeleteDomain was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteDomain.Lock()
	mock.calls.DeleteDomain = append(mock.calls.DeleteDomain, callInfo)
	mock.lockDeleteDomain.Unlock()
	return mock.DeleteDomainFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteDomainCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteDomain.RLock()
	calls := mock.calls.DeleteDomain
	mock.lockDeleteDomain.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ExportDomains(ctx context.Context) ([]byte, error) {
	if mock.ExportDomainsFunc == nil {
		panic("catalogServiceMock.ExportDomainsFunc: method is nil but catalogService.ExportDomains was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportDomains.Lock()
	mock.calls.ExportDomains = append(mock.calls.ExportDomains, callInfo)
	mock.lockExportDomains.Unlock()
	return mock.ExportDomainsFunc(ctx)
}

func (mock *catalogServiceMock) ExportDomainsCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportDomains.RLock()
	calls := mock.calls.ExportDomains
	mock.lockExportDomains.RUnlock()
	return calls
}
