package filesystem

import (
	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

// mockUnixStatfsProvider is a mock implementation of [unixStatfsProvider].
type mockUnixStatfsProvider struct {
	mock.Mock
}

func newMockUnixStatfsProvider(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockUnixStatfsProvider {
	m := &mockUnixStatfsProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUnixStatfsProvider) Statfs(path string, buf *unix.Statfs_t) error {
	ret := m.Called(path, buf)

	return ret.Error(0)
}
