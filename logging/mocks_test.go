package logging

import "github.com/stretchr/testify/mock"

type mockTestSink struct {
	mock.Mock
}

func (m *mockTestSink) Log(values ...interface{}) {
	m.Called(values...)
}
