package fitment

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expandQuery = `FROM car_engines e`

func TestExpandFullTupleIsSingleton(t *testing.T) {
	store, mock := newMockStore(t)

	sel := Selection{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5}
	tuples, err := store.Expand(sel)
	require.NoError(t, err)

	assert.Equal(t, []Tuple{{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5}}, tuples)
	// No query at all for a full tuple.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpandModelCrossProduct(t *testing.T) {
	store, mock := newMockStore(t)

	// 2 years x 2 body types x 3 engines under one model.
	rows := sqlmock.NewRows([]string{"make_id", "model_id", "year_id", "body_type_id", "id"})
	engineID := int64(100)
	for _, yearID := range []int64{10, 11} {
		for _, bodyTypeID := range []int64{20, 21} {
			for i := 0; i < 3; i++ {
				rows.AddRow(1, 2, yearID, bodyTypeID*10+yearID, engineID)
				engineID++
			}
		}
	}

	mock.ExpectQuery(regexp.QuoteMeta(expandQuery)).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	tuples, err := store.Expand(Selection{MakeID: 1, ModelID: 2})
	require.NoError(t, err)
	require.Len(t, tuples, 12)

	seen := make(map[Tuple]bool)
	for _, tuple := range tuples {
		assert.False(t, seen[tuple], "tuple %+v emitted twice", tuple)
		seen[tuple] = true
		assert.Equal(t, int64(1), tuple.MakeID)
		assert.Equal(t, int64(2), tuple.ModelID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpandFiltersAtDeepestGivenLevel(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		filterCol string
		arg       int64
	}{
		{"body type", Selection{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4}, "e.body_type_id", 4},
		{"year", Selection{MakeID: 1, ModelID: 2, YearID: 3}, "bt.year_id", 3},
		{"model", Selection{MakeID: 1, ModelID: 2}, "y.model_id", 2},
		{"make", Selection{MakeID: 1}, "mo.make_id", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.filterCol+" = $1")).
				WithArgs(tt.arg).
				WillReturnRows(sqlmock.NewRows([]string{"make_id", "model_id", "year_id", "body_type_id", "id"}).
					AddRow(1, 2, 3, 4, 5))

			tuples, err := store.Expand(tt.sel)
			require.NoError(t, err)
			assert.Len(t, tuples, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExpandEmptySubtree(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(expandQuery)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"make_id", "model_id", "year_id", "body_type_id", "id"}))

	tuples, err := store.Expand(Selection{MakeID: 1, ModelID: 2, YearID: 3})
	require.NoError(t, err)
	assert.Empty(t, tuples)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpandRejectsInvalidSelection(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.Expand(Selection{})
	assert.ErrorIs(t, err, ErrMakeRequired)

	_, err = store.Expand(Selection{MakeID: 1, YearID: 3})
	assert.ErrorIs(t, err, ErrSelectionGap)

	// Invalid selections never reach the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}
