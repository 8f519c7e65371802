package models

type CarBodyType struct {
	ID     int64  `json:"id" db:"id"`
	YearID int64  `json:"yearId" db:"year_id"`
	Name   string `json:"name" db:"name"`
}

func (CarBodyType) TableName() string {
	return "car_body_types"
}

func (CarBodyType) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS car_body_types (
		id SERIAL PRIMARY KEY,
		year_id INTEGER NOT NULL REFERENCES car_years(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		UNIQUE (year_id, name)
	);`
}
