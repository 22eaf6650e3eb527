package pokeapi

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions. It is safe for concurrent use.
//
// Example usage:
//
//	client := new(MockClient)
//	client.On("ListItems", mock.Anything, 50, 0).Return([]ListEntry{
//	    {Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
//	}, nil)
//	client.On("GetItemDetail", mock.Anything, "1").Return(Detail{ID: 1, Types: []string{"grass"}}, nil)
//
//	entries, err := client.ListItems(ctx, 50, 0)
//	assert.NoError(t, err)
//	client.AssertCalled(t, "ListItems", mock.Anything, 50, 0)
type MockClient struct {
	mock.Mock
}

var _ Client = (*MockClient)(nil)

// ListItems returns mocked list entries.
// Configure the return value using:
//
//	mock.On("ListItems", mock.Anything, 50, 0).Return([]ListEntry{...}, nil)
func (m *MockClient) ListItems(ctx context.Context, limit, offset int) ([]ListEntry, error) {
	args := m.Called(ctx, limit, offset)
	entries, _ := args.Get(0).([]ListEntry)
	return entries, args.Error(1)
}

// GetItemDetail returns a mocked detail record.
//
//	mock.On("GetItemDetail", mock.Anything, "25").Return(Detail{...}, nil)
func (m *MockClient) GetItemDetail(ctx context.Context, idOrName string) (Detail, error) {
	args := m.Called(ctx, idOrName)
	detail, _ := args.Get(0).(Detail)
	return detail, args.Error(1)
}

// ListTypes returns a mocked taxonomy.
func (m *MockClient) ListTypes(ctx context.Context) ([]TypeRef, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]TypeRef)
	return types, args.Error(1)
}

// ListItemsByType returns mocked type membership.
func (m *MockClient) ListItemsByType(ctx context.Context, typeName string) ([]ListEntry, error) {
	args := m.Called(ctx, typeName)
	entries, _ := args.Get(0).([]ListEntry)
	return entries, args.Error(1)
}
