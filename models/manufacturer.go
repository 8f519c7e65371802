package models

import (
	"time"

	"github.com/google/uuid"
)

type Manufacturer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Country     *string   `json:"country" db:"country"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (Manufacturer) TableName() string {
	return "manufacturers"
}

func (Manufacturer) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS manufacturers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE,
		country TEXT,
		description TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
