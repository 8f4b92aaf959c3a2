package view

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"ticketing-webapp/model"
)

// UsersAPI is the slice of the backend client the admin user lists need.
type UsersAPI interface {
	GetAllCustomers(ctx context.Context) ([]model.User, error)
	GetAllOrganizers(ctx context.Context) ([]model.User, error)
}

// UserListView backs the admin's customer and organizer tables.
type UserListView struct {
	api  UsersAPI
	role string
	log  *logrus.Entry

	mu      sync.Mutex
	closed  bool
	users   []model.User
	loading bool
	loadErr error
}

func NewUserListView(api UsersAPI, role string) *UserListView {
	return &UserListView{
		api:  api,
		role: role,
		log:  logrus.WithField("view", "user-list").WithField("role", role),
	}
}

func (v *UserListView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	var users []model.User
	var err error
	if v.role == model.RoleOrganizer {
		users, err = v.api.GetAllOrganizers(ctx)
	} else {
		users, err = v.api.GetAllCustomers(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if v.closed || ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		v.log.WithError(err).Warn("cannot load users")
		v.loadErr = err
		return err
	}
	v.loadErr = nil
	v.users = users
	return nil
}

// Remove drops the user from the cached list only. There is no backend delete
// call; the row reappears on the next load.
func (v *UserListView) Remove(userId int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.users {
		if v.users[i].Id == userId {
			v.users = append(v.users[:i], v.users[i+1:]...)
			return
		}
	}
}

func (v *UserListView) Users() []model.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	users := make([]model.User, len(v.users))
	copy(users, v.users)
	return users
}

func (v *UserListView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.users)
}

func (v *UserListView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *UserListView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

func (v *UserListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
