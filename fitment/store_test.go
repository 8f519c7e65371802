package fitment

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertMakeQuery = `INSERT INTO car_makes (name) VALUES ($1)`

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db), mock
}

func TestUpsertMakeIdempotent(t *testing.T) {
	store, mock := newMockStore(t)

	// Two upserts of the same name resolve to the same row.
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta(upsertMakeQuery)).
			WithArgs("Toyota").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Toyota"))
	}

	first, err := store.UpsertMake("Toyota")
	require.NoError(t, err)
	second, err := store.UpsertMake("Toyota")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Toyota", second.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMakeTrimsAndRejectsBlank(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(upsertMakeQuery)).
		WithArgs("Toyota").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Toyota"))

	make, err := store.UpsertMake("  Toyota  ")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", make.Name)

	_, err = store.UpsertMake("   ")
	assert.ErrorIs(t, err, ErrBlankName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVehicleWalksWholeChain(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO car_makes`)).
		WithArgs("BMW").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "BMW"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO car_models`)).
		WithArgs(int64(1), "X5").
		WillReturnRows(sqlmock.NewRows([]string{"id", "make_id", "name"}).AddRow(2, 1, "X5"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO car_years`)).
		WithArgs(int64(2), 2020).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model_id", "year"}).AddRow(3, 2, 2020))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO car_body_types`)).
		WithArgs(int64(3), "SUV").
		WillReturnRows(sqlmock.NewRows([]string{"id", "year_id", "name"}).AddRow(4, 3, "SUV"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO car_engines`)).
		WithArgs(int64(4), "3.0i").
		WillReturnRows(sqlmock.NewRows([]string{"id", "body_type_id", "name", "capacity", "horsepower"}).
			AddRow(5, 4, "3.0i", nil, nil))

	tuple, err := store.UpsertVehicle(VehicleRef{
		CarMake: "BMW", CarModel: "X5", CarYear: 2020, CarBodyType: "SUV", CarEngine: "3.0i",
	})
	require.NoError(t, err)

	assert.Equal(t, Tuple{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5}, tuple)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVehicleRejectsIncompleteRef(t *testing.T) {
	store, mock := newMockStore(t)

	_, err := store.UpsertVehicle(VehicleRef{CarMake: "BMW", CarYear: 2020})
	assert.ErrorIs(t, err, ErrIncompleteRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyChainDetectsMismatch(t *testing.T) {
	store, mock := newMockStore(t)

	chainRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"make_id", "model_id", "year_id", "body_type_id"}).
			AddRow(1, 2, 3, 4)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`FROM car_engines e`)).
		WithArgs(int64(5)).
		WillReturnRows(chainRows())
	err := store.VerifyChain(Tuple{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5})
	assert.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM car_engines e`)).
		WithArgs(int64(5)).
		WillReturnRows(chainRows())
	err = store.VerifyChain(Tuple{MakeID: 9, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5})
	assert.ErrorIs(t, err, ErrInconsistentLink)

	assert.NoError(t, mock.ExpectationsWereMet())
}
