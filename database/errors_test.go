package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))

	err := ClassifyError(sql.ErrNoRows)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUniqueViolation(err))

	err = ClassifyError(&pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(err))

	err = ClassifyError(&pq.Error{Code: "23503"})
	assert.True(t, IsForeignKeyViolation(err))

	err = ClassifyError(errors.New("connection reset"))
	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, KindUnknown, storeErr.Kind)
}

func TestClassifyErrorPassesThroughAndWraps(t *testing.T) {
	classified := ClassifyError(sql.ErrNoRows)
	assert.Same(t, classified, ClassifyError(classified))

	// Wrapped driver errors still classify.
	wrapped := fmt.Errorf("query failed: %w", &pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(ClassifyError(wrapped)))

	// The original error stays reachable through Unwrap.
	assert.ErrorIs(t, ClassifyError(sql.ErrNoRows), sql.ErrNoRows)
}
