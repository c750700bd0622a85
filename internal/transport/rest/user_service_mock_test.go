package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/editorial-backend/internal/domain"
	"github.com/heartmarshall/editorial-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListUsersFunc         func(ctx context.Context) ([]domain.User, error)
	ListRolesFunc         func(ctx context.Context) ([]domain.Role, error)
	CreateUserFunc        func(ctx context.Context, in user.CreateUserInput) (*domain.User, error)
	UpdateUserFunc        func(ctx context.Context, id int64, in user.UpdateUserInput) (*domain.User, error)
	DeleteUserFunc        func(ctx context.Context, id int64) error
	UpdateMyProfileFunc   func(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error)
	SetMySMTPPasswordFunc func(ctx context.Context, smtpPassword string) (*domain.User, error)

	calls struct {
		ListUsers []struct {
			Ctx context.Context
		}
		ListRoles []struct {
			Ctx context.Context
		}
		CreateUser []struct {
			Ctx context.Context
			In  user.CreateUserInput
		}
		UpdateUser []struct {
			Ctx context.Context
			ID  int64
			In  user.UpdateUserInput
		}
		DeleteUser []struct {
			Ctx context.Context
			ID  int64
		}
		UpdateMyProfile []struct {
			Ctx context.Context
			In  user.UpdateProfileInput
		}
		SetMySMTPPassword []struct {
			Ctx          context.Context
			SmtpPassword string
		}
	}
	lockListUsers         sync.RWMutex
	lockListRoles         sync.RWMutex
	lockCreateUser        sync.RWMutex
	lockUpdateUser        sync.RWMutex
	lockDeleteUser        sync.RWMutex
	lockUpdateMyProfile   sync.RWMutex
	lockSetMySMTPPassword sync.RWMutex
}

func (mock *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) ListRoles(ctx context.Context) ([]domain.Role, error) {
	if mock.ListRolesFunc == nil {
		panic("userServiceMock.ListRolesFunc: method is nil but userService.ListRoles was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListRoles.Lock()
	mock.calls.ListRoles = append(mock.calls.ListRoles, callInfo)
	mock.lockListRoles.Unlock()
	return mock.ListRolesFunc(ctx)
}

func (mock *userServiceMock) ListRolesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRoles.RLock()
	calls := mock.calls.ListRoles
	mock.lockListRoles.RUnlock()
	return calls
}

func (mock *userServiceMock) CreateUser(ctx context.Context, in user.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userServiceMock.CreateUserFunc: method is nil but userService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  user.CreateUserInput
	}{Ctx: ctx, In: in}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, in)
}

func (mock *userServiceMock) CreateUserCalls() []struct {
	Ctx context.Context
	In  user.CreateUserInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateUser(ctx context.Context, id int64, in user.UpdateUserInput) (*domain.User, error) {
	if mock.UpdateUserFunc == nil {
		panic("userServiceMock.UpdateUserFunc: method is nil but userService.UpdateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		In  user.UpdateUserInput
	}{Ctx: ctx, ID: id, In: in}
	mock.lockUpdateUser.Lock()
	mock.calls.UpdateUser = append(mock.calls.UpdateUser, callInfo)
	mock.lockUpdateUser.Unlock()
	return mock.UpdateUserFunc(ctx, id, in)
}

func (mock *userServiceMock) UpdateUserCalls() []struct {
	Ctx context.Context
	ID  int64
	In  user.UpdateUserInput
} {
	mock.lockUpdateUser.RLock()
	calls := mock.calls.UpdateUser
	mock.lockUpdateUser.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteUser(ctx context.Context, id int64) error {
	if mock.DeleteUserFunc == nil {
		panic("userServiceMock.DeleteUserFunc: method is nil but userService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, id)
}

func (mock *userServiceMock) DeleteUserCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteUser.RLock()
	calls := mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateMyProfile(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateMyProfileFunc == nil {
		panic("userServiceMock.UpdateMyProfileFunc: method is nil but userService.UpdateMyProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  user.UpdateProfileInput
	}{Ctx: ctx, In: in}
	mock.lockUpdateMyProfile.Lock()
	mock.calls.UpdateMyProfile = append(mock.calls.UpdateMyProfile, callInfo)
	mock.lockUpdateMyProfile.Unlock()
	return mock.UpdateMyProfileFunc(ctx, in)
}

func (mock *userServiceMock) UpdateMyProfileCalls() []struct {
	Ctx context.Context
	In  user.UpdateProfileInput
} {
	mock.lockUpdateMyProfile.RLock()
	calls := mock.calls.UpdateMyProfile
	mock.lockUpdateMyProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) SetMySMTPPassword(ctx context.Context, smtpPassword string) (*domain.User, error) {
	if mock.SetMySMTPPasswordFunc == nil {
		panic("userServiceMock.SetMySMTPPasswordFunc: method is nil but userService.SetMySMTPPassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SmtpPassword string
	}{Ctx: ctx, SmtpPassword: smtpPassword}
	mock.lockSetMySMTPPassword.Lock()
	mock.calls.SetMySMTPPassword = append(mock.calls.SetMySMTPPassword, callInfo)
	mock.lockSetMySMTPPassword.Unlock()
	return mock.SetMySMTPPasswordFunc(ctx, smtpPassword)
}

func (mock *userServiceMock) SetMySMTPPasswordCalls() []struct {
	Ctx          context.Context
	SmtpPassword string
} {
	mock.lockSetMySMTPPassword.RLock()
	calls := mock.calls.SetMySMTPPassword
	mock.lockSetMySMTPPassword.RUnlock()
	return calls
}
