package mounts

import (
	"context"

	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

// mockOsReadsProvider is a mock implementation of [osReadsProvider].
type mockOsReadsProvider struct {
	mock.Mock
}

func newMockOsReadsProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockOsReadsProvider {
	m := &mockOsReadsProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockOsReadsProvider) ReadFile(name string) ([]byte, error) {
	ret := m.Called(name)

	var data []byte
	if v := ret.Get(0); v != nil {
		data, _ = v.([]byte)
	}

	return data, ret.Error(1)
}

// mockUnixLstatProvider is a mock implementation of [unixLstatProvider].
type mockUnixLstatProvider struct {
	mock.Mock
}

func newMockUnixLstatProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockUnixLstatProvider {
	m := &mockUnixLstatProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUnixLstatProvider) Lstat(path string, stat *unix.Stat_t) error {
	ret := m.Called(path, stat)

	return ret.Error(0)
}

// mockTableProvider is a mock implementation of [tableProvider].
type mockTableProvider struct {
	mock.Mock
}

func newMockTableProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockTableProvider {
	m := &mockTableProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockTableProvider) Mounts(ctx context.Context) ([]Mount, error) {
	ret := m.Called(ctx)

	var mounts []Mount
	if v := ret.Get(0); v != nil {
		mounts, _ = v.([]Mount)
	}

	return mounts, ret.Error(1)
}
