package models

type CarEngine struct {
	ID         int64    `json:"id" db:"id"`
	BodyTypeID int64    `json:"bodyTypeId" db:"body_type_id"`
	Name       string   `json:"name" db:"name"`
	Capacity   *float64 `json:"capacity" db:"capacity"`
	Horsepower *int     `json:"horsepower" db:"horsepower"`
}

func (CarEngine) TableName() string {
	return "car_engines"
}

func (CarEngine) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS car_engines (
		id SERIAL PRIMARY KEY,
		body_type_id INTEGER NOT NULL REFERENCES car_body_types(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		capacity NUMERIC(4,1),
		horsepower INTEGER,
		UNIQUE (body_type_id, name)
	);`
}
