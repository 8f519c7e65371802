package fitment

import (
	"database/sql"
	"strings"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

// Store provides find-or-create access to the five-level vehicle hierarchy.
// Every upsert is a single INSERT .. ON CONFLICT statement, so concurrent
// upserts of the same natural key converge on one row without duplicates.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertMake(name string) (models.CarMake, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CarMake{}, ErrBlankName
	}

	var make models.CarMake
	query := `INSERT INTO car_makes (name) VALUES ($1)
	          ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id, name`
	err := s.db.QueryRow(query, name).Scan(&make.ID, &make.Name)
	if err != nil {
		return models.CarMake{}, database.ClassifyError(err)
	}
	return make, nil
}

func (s *Store) UpsertModel(makeName, modelName string) (models.CarModel, error) {
	make, err := s.UpsertMake(makeName)
	if err != nil {
		return models.CarModel{}, err
	}
	return s.upsertModelUnder(make.ID, modelName)
}

func (s *Store) upsertModelUnder(makeID int64, name string) (models.CarModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CarModel{}, ErrBlankName
	}

	var model models.CarModel
	query := `INSERT INTO car_models (make_id, name) VALUES ($1, $2)
	          ON CONFLICT (make_id, name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id, make_id, name`
	err := s.db.QueryRow(query, makeID, name).Scan(&model.ID, &model.MakeID, &model.Name)
	if err != nil {
		return models.CarModel{}, database.ClassifyError(err)
	}
	return model, nil
}

func (s *Store) UpsertYear(makeName, modelName string, year int) (models.CarYear, error) {
	model, err := s.UpsertModel(makeName, modelName)
	if err != nil {
		return models.CarYear{}, err
	}
	return s.upsertYearUnder(model.ID, year)
}

func (s *Store) upsertYearUnder(modelID int64, year int) (models.CarYear, error) {
	if year <= 0 {
		return models.CarYear{}, ErrInvalidYear
	}

	var row models.CarYear
	query := `INSERT INTO car_years (model_id, year) VALUES ($1, $2)
	          ON CONFLICT (model_id, year) DO UPDATE SET year = EXCLUDED.year
	          RETURNING id, model_id, year`
	err := s.db.QueryRow(query, modelID, year).Scan(&row.ID, &row.ModelID, &row.Year)
	if err != nil {
		return models.CarYear{}, database.ClassifyError(err)
	}
	return row, nil
}

func (s *Store) UpsertBodyType(makeName, modelName string, year int, bodyTypeName string) (models.CarBodyType, error) {
	yearRow, err := s.UpsertYear(makeName, modelName, year)
	if err != nil {
		return models.CarBodyType{}, err
	}
	return s.upsertBodyTypeUnder(yearRow.ID, bodyTypeName)
}

func (s *Store) upsertBodyTypeUnder(yearID int64, name string) (models.CarBodyType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CarBodyType{}, ErrBlankName
	}

	var bodyType models.CarBodyType
	query := `INSERT INTO car_body_types (year_id, name) VALUES ($1, $2)
	          ON CONFLICT (year_id, name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id, year_id, name`
	err := s.db.QueryRow(query, yearID, name).Scan(&bodyType.ID, &bodyType.YearID, &bodyType.Name)
	if err != nil {
		return models.CarBodyType{}, database.ClassifyError(err)
	}
	return bodyType, nil
}

func (s *Store) UpsertEngine(makeName, modelName string, year int, bodyTypeName, engineName string) (models.CarEngine, error) {
	bodyType, err := s.UpsertBodyType(makeName, modelName, year, bodyTypeName)
	if err != nil {
		return models.CarEngine{}, err
	}
	return s.upsertEngineUnder(bodyType.ID, engineName)
}

func (s *Store) upsertEngineUnder(bodyTypeID int64, name string) (models.CarEngine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CarEngine{}, ErrBlankName
	}

	var engine models.CarEngine
	query := `INSERT INTO car_engines (body_type_id, name) VALUES ($1, $2)
	          ON CONFLICT (body_type_id, name) DO UPDATE SET name = EXCLUDED.name
	          RETURNING id, body_type_id, name, capacity, horsepower`
	err := s.db.QueryRow(query, bodyTypeID, name).Scan(
		&engine.ID, &engine.BodyTypeID, &engine.Name, &engine.Capacity, &engine.Horsepower,
	)
	if err != nil {
		return models.CarEngine{}, database.ClassifyError(err)
	}
	return engine, nil
}

// UpsertVehicle walks the whole chain for one named vehicle configuration and
// returns the concrete tuple, creating any missing levels along the way.
func (s *Store) UpsertVehicle(ref VehicleRef) (Tuple, error) {
	if err := ref.Validate(); err != nil {
		return Tuple{}, err
	}

	make, err := s.UpsertMake(ref.CarMake)
	if err != nil {
		return Tuple{}, err
	}
	model, err := s.upsertModelUnder(make.ID, ref.CarModel)
	if err != nil {
		return Tuple{}, err
	}
	year, err := s.upsertYearUnder(model.ID, ref.CarYear)
	if err != nil {
		return Tuple{}, err
	}
	bodyType, err := s.upsertBodyTypeUnder(year.ID, ref.CarBodyType)
	if err != nil {
		return Tuple{}, err
	}
	engine, err := s.upsertEngineUnder(bodyType.ID, ref.CarEngine)
	if err != nil {
		return Tuple{}, err
	}

	return Tuple{
		MakeID:     make.ID,
		ModelID:    model.ID,
		YearID:     year.ID,
		BodyTypeID: bodyType.ID,
		EngineID:   engine.ID,
	}, nil
}

// VerifyChain checks that the five ids of a tuple actually form one path
// through the hierarchy, walking engine -> body type -> year -> model -> make.
// Guards the raw compatibility create path against inconsistent tuples.
func (s *Store) VerifyChain(t Tuple) error {
	var makeID, modelID, yearID, bodyTypeID int64
	query := `SELECT mo.make_id, y.model_id, bt.year_id, e.body_type_id
	          FROM car_engines e
	          JOIN car_body_types bt ON e.body_type_id = bt.id
	          JOIN car_years y ON bt.year_id = y.id
	          JOIN car_models mo ON y.model_id = mo.id
	          WHERE e.id = $1`
	err := s.db.QueryRow(query, t.EngineID).Scan(&makeID, &modelID, &yearID, &bodyTypeID)
	if err != nil {
		return database.ClassifyError(err)
	}
	if makeID != t.MakeID || modelID != t.ModelID || yearID != t.YearID || bodyTypeID != t.BodyTypeID {
		return ErrInconsistentLink
	}
	return nil
}
