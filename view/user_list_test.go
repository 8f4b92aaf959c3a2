package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing-webapp/model"
)

type fakeUsersAPI struct {
	customers  []model.User
	organizers []model.User
}

func (f *fakeUsersAPI) GetAllCustomers(ctx context.Context) ([]model.User, error) {
	return f.customers, nil
}

func (f *fakeUsersAPI) GetAllOrganizers(ctx context.Context) ([]model.User, error) {
	return f.organizers, nil
}

func TestUserListLoadsByRole(t *testing.T) {
	api := &fakeUsersAPI{
		customers:  []model.User{{Id: 1, Name: "Ada", Role: model.RoleCustomer}},
		organizers: []model.User{{Id: 2, Name: "Grace", Role: model.RoleOrganizer}, {Id: 3, Name: "Linus", Role: model.RoleOrganizer}},
	}

	customers := NewUserListView(api, model.RoleCustomer)
	require.NoError(t, customers.Load(context.Background()))
	assert.Equal(t, 1, customers.Count())

	organizers := NewUserListView(api, model.RoleOrganizer)
	require.NoError(t, organizers.Load(context.Background()))
	assert.Equal(t, 2, organizers.Count())
}

func TestUserListRemoveIsLocalOnly(t *testing.T) {
	api := &fakeUsersAPI{
		customers: []model.User{{Id: 1, Name: "Ada"}, {Id: 2, Name: "Grace"}},
	}

	v := NewUserListView(api, model.RoleCustomer)
	require.NoError(t, v.Load(context.Background()))

	v.Remove(1)
	assert.Equal(t, 1, v.Count())
	assert.Equal(t, int64(2), v.Users()[0].Id)

	v.Remove(999) // unknown id is a no-op
	assert.Equal(t, 1, v.Count())

	// the backend was never told, so the row comes back on reload
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, 2, v.Count())
}
