// Package mocks provides a hand-written testify mock of the reference
// cache for service tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ReferenceCacheMock struct {
	mock.Mock
}

func NewReferenceCacheMock() *ReferenceCacheMock {
	return &ReferenceCacheMock{}
}

func (m *ReferenceCacheMock) GetList(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *ReferenceCacheMock) SetList(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *ReferenceCacheMock) Invalidate(ctx context.Context, keys ...string) {
	callArgs := make([]interface{}, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	m.Called(callArgs...)
}
