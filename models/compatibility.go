package models

import (
	"github.com/google/uuid"
)

type Compatibility struct {
	ID         int64     `json:"id" db:"id"`
	ProductID  uuid.UUID `json:"productId" db:"product_id"`
	MakeID     int64     `json:"carMakeId" db:"make_id"`
	ModelID    int64     `json:"carModelId" db:"model_id"`
	YearID     int64     `json:"carYearId" db:"year_id"`
	BodyTypeID int64     `json:"carBodyTypeId" db:"body_type_id"`
	EngineID   int64     `json:"carEngineId" db:"engine_id"`
}

func (Compatibility) TableName() string {
	return "compatibilities"
}

func (Compatibility) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS compatibilities (
		id SERIAL PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		make_id INTEGER NOT NULL REFERENCES car_makes(id) ON DELETE CASCADE,
		model_id INTEGER NOT NULL REFERENCES car_models(id) ON DELETE CASCADE,
		year_id INTEGER NOT NULL REFERENCES car_years(id) ON DELETE CASCADE,
		body_type_id INTEGER NOT NULL REFERENCES car_body_types(id) ON DELETE CASCADE,
		engine_id INTEGER NOT NULL REFERENCES car_engines(id) ON DELETE CASCADE,
		UNIQUE (product_id, make_id, model_id, year_id, body_type_id, engine_id)
	);`
}
