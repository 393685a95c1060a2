package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/phylsix/tinyurl/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMock = errors.New("mock error")

// assertStatus checks that err is a huma status error with the given code.
func assertStatus(t *testing.T, err error, status int) {
	t.Helper()

	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, status, statusErr.GetStatus())
}

const testURL = "https://example.com/a"

// mockStore is a configurable test double for shortener.Repository.
type mockStore struct {
	insertErr    error
	getByCodeErr error
	mappings     map[shortener.Code]string
}

func newMockStore() *mockStore {
	return &mockStore{mappings: make(map[shortener.Code]string)}
}

func (m *mockStore) Insert(_ context.Context, mapping *shortener.Mapping) error {
	if m.insertErr != nil {
		return m.insertErr
	}

	if _, taken := m.mappings[mapping.Code]; taken {
		return shortener.ErrCodeTaken
	}

	m.mappings[mapping.Code] = mapping.TargetURL

	return nil
}

func (m *mockStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	if m.getByCodeErr != nil {
		return nil, m.getByCodeErr
	}

	url, ok := m.mappings[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &shortener.Mapping{Code: code, TargetURL: url}, nil
}
