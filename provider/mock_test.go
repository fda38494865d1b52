package provider

import (
	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) ValidCodes() map[string]struct{} {
	args := m.Called()
	return args.Get(0).(map[string]struct{})
}

func (m *MockProvider) MaxLength() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
