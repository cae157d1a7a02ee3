// File: internal/mocks/mocks.go
package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

// -- Page Context Mock --

// MockPageContext mocks schemas.PageContext.
type MockPageContext struct {
	mock.Mock
}

var _ schemas.PageContext = (*MockPageContext)(nil)

func (m *MockPageContext) Navigate(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

func (m *MockPageContext) Snapshot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPageContext) ExecuteScript(ctx context.Context, script string, scriptArgs []interface{}) (json.RawMessage, error) {
	args := m.Called(ctx, script, scriptArgs)
	var raw json.RawMessage
	if v := args.Get(0); v != nil {
		raw = v.(json.RawMessage)
	}
	return raw, args.Error(1)
}

func (m *MockPageContext) CurrentURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPageContext) Close() error {
	args := m.Called()
	return args.Error(0)
}

// -- Profile Store Mock --

// MockProfileStore mocks schemas.ProfileStore.
type MockProfileStore struct {
	mock.Mock
}

var _ schemas.ProfileStore = (*MockProfileStore)(nil)

func (m *MockProfileStore) ListProfiles(ctx context.Context) ([]schemas.Profile, error) {
	args := m.Called(ctx)
	var profiles []schemas.Profile
	if v := args.Get(0); v != nil {
		profiles = v.([]schemas.Profile)
	}
	return profiles, args.Error(1)
}

func (m *MockProfileStore) GetProfile(ctx context.Context, id string) (*schemas.Profile, error) {
	args := m.Called(ctx, id)
	var p *schemas.Profile
	if v := args.Get(0); v != nil {
		p = v.(*schemas.Profile)
	}
	return p, args.Error(1)
}

func (m *MockProfileStore) ActiveProfile(ctx context.Context) (*schemas.Profile, error) {
	args := m.Called(ctx)
	var p *schemas.Profile
	if v := args.Get(0); v != nil {
		p = v.(*schemas.Profile)
	}
	return p, args.Error(1)
}

func (m *MockProfileStore) SaveProfile(ctx context.Context, p *schemas.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileStore) DeleteProfile(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileStore) SetActive(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// -- Notifier Mock --

// MockNotifier mocks schemas.Notifier.
type MockNotifier struct {
	mock.Mock
}

var _ schemas.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) FillCompleted(report *schemas.FillReport) {
	m.Called(report)
}

func (m *MockNotifier) FillFailed(url string, err error) {
	m.Called(url, err)
}
