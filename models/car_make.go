package models

type CarMake struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func (CarMake) TableName() string {
	return "car_makes"
}

func (CarMake) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS car_makes (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);`
}
