package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "task-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeStorage))
}

func TestHandleDatabaseError_Deadline(t *testing.T) {
	result := HandleDatabaseError("query storage item", fmt.Errorf("scan: %w", context.DeadlineExceeded))

	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeTimeout))
}

func TestQuerySingle_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := QuerySingle(context.Background(), repo.db,
		`SELECT key, value, updated_at FROM local_storage WHERE key = ?`,
		ScanItem, "storage item", "missing", "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "missing")
}

func TestQueryMultiple_BadQuery(t *testing.T) {
	repo := setupTestDB(t)

	_, err := QueryMultiple(context.Background(), repo.db, `SELECT * FROM no_such_table`, ScanItems, "storage items")

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}

func TestExecute_BadStatement(t *testing.T) {
	repo := setupTestDB(t)

	_, err := Execute(context.Background(), repo.db, `INSERT INTO no_such_table VALUES (1)`)

	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeStorage))
}
