package xviper

import (
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
)

type mockUnmarshaler struct {
	mock.Mock
}

func (m *mockUnmarshaler) Unmarshal(v interface{}, o ...viper.DecoderConfigOption) error {
	return m.Called(v, len(o)).Error(0)
}
