package check

import (
	"context"

	"github.com/desertwitch/checkdisk/internal/filesystem"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// mockMountProvider is a mock implementation of [mountProvider].
type mockMountProvider struct {
	mock.Mock
}

func newMockMountProvider(t testingT) *mockMountProvider {
	m := &mockMountProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockMountProvider) IsMountPoint(path string) bool {
	ret := m.Called(path)

	return ret.Bool(0)
}

func (m *mockMountProvider) Device(ctx context.Context, path string) (string, bool) {
	ret := m.Called(ctx, path)

	return ret.String(0), ret.Bool(1)
}

// mockUsageProvider is a mock implementation of [usageProvider].
type mockUsageProvider struct {
	mock.Mock
}

func newMockUsageProvider(t testingT) *mockUsageProvider {
	m := &mockUsageProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUsageProvider) GetDiskUsage(path string) (filesystem.DiskStats, error) {
	ret := m.Called(path)

	stats, _ := ret.Get(0).(filesystem.DiskStats)

	return stats, ret.Error(1)
}
