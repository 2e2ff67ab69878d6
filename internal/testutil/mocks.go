package testutil

import "github.com/stretchr/testify/mock"

// MockEffect is a mock celebration effect
type MockEffect struct {
	mock.Mock
}

func (m *MockEffect) Start() {
	m.Called()
}

// MockStoppableEffect is a mock effect that can also be stopped
type MockStoppableEffect struct {
	mock.Mock
}

func (m *MockStoppableEffect) Start() {
	m.Called()
}

func (m *MockStoppableEffect) Stop() {
	m.Called()
}
