package models

type CarModel struct {
	ID     int64  `json:"id" db:"id"`
	MakeID int64  `json:"makeId" db:"make_id"`
	Name   string `json:"name" db:"name"`
}

func (CarModel) TableName() string {
	return "car_models"
}

func (CarModel) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS car_models (
		id SERIAL PRIMARY KEY,
		make_id INTEGER NOT NULL REFERENCES car_makes(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		UNIQUE (make_id, name)
	);`
}
