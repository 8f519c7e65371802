package models

type CarYear struct {
	ID      int64 `json:"id" db:"id"`
	ModelID int64 `json:"modelId" db:"model_id"`
	Year    int   `json:"year" db:"year"`
}

func (CarYear) TableName() string {
	return "car_years"
}

func (CarYear) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS car_years (
		id SERIAL PRIMARY KEY,
		model_id INTEGER NOT NULL REFERENCES car_models(id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		UNIQUE (model_id, year)
	);`
}
