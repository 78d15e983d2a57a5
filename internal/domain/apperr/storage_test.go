package apperr

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromStorage_SQLStateMapping(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Kind
	}{
		{"unique violation", "23505", AlreadyExists},
		{"foreign key violation", "23503", InUse},
		{"check violation", "23514", ValidationFailed},
		{"serialization failure", "40001", TemporarilyUnavailable},
		{"deadlock", "40P01", TemporarilyUnavailable},
		{"connection exception class", "08006", TemporarilyUnavailable},
		{"unknown code", "42703", DatabaseOperationFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStorage(&pgconn.PgError{Code: tt.code}, "op failed")
			require.Equal(t, tt.want, err.Kind)
		})
	}
}

func TestFromStorage_RecordNotFound(t *testing.T) {
	err := FromStorage(gorm.ErrRecordNotFound, "product")
	require.Equal(t, NotFound, err.Kind)
}

func TestFromStorage_PassThrough(t *testing.T) {
	original := New(AccessDenied, "not yours")
	err := FromStorage(original, "wrapped")
	require.Equal(t, AccessDenied, err.Kind)
	require.Equal(t, "not yours", err.Message)
}

func TestFromStorage_UnknownError(t *testing.T) {
	err := FromStorage(errors.New("boom"), "op failed")
	require.Equal(t, DatabaseOperationFail, err.Kind)
	require.ErrorContains(t, err, "boom")
}

func TestIsKind(t *testing.T) {
	err := Wrap(InUse, "category has products", errors.New("fk")) // wrapped chain
	require.True(t, IsKind(err, InUse))
	require.False(t, IsKind(err, NotFound))
	require.False(t, IsKind(errors.New("plain"), InUse))
}
