package fitment

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zodmy/SiriusAuto-sub001/database"
	"github.com/zodmy/SiriusAuto-sub001/models"
)

// Ledger owns the product <-> vehicle-tuple relation.
type Ledger struct {
	db    *sql.DB
	store *Store
}

func NewLedger(db *sql.DB, store *Store) *Ledger {
	return &Ledger{db: db, store: store}
}

// Create inserts one compatibility row. A row that already exists is a
// non-error no-op; the bool reports whether a row was actually inserted.
func (l *Ledger) Create(productID uuid.UUID, t Tuple) (bool, error) {
	query := `INSERT INTO compatibilities (product_id, make_id, model_id, year_id, body_type_id, engine_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (product_id, make_id, model_id, year_id, body_type_id, engine_id) DO NOTHING`
	res, err := l.db.Exec(query, productID, t.MakeID, t.ModelID, t.YearID, t.BodyTypeID, t.EngineID)
	if err != nil {
		return false, database.ClassifyError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, database.ClassifyError(err)
	}
	return affected == 1, nil
}

// CreateForSelection expands a partial selection and inserts one row per
// resulting tuple. total counts every tuple attempted, created only the ones
// that were not already present.
func (l *Ledger) CreateForSelection(productID uuid.UUID, sel Selection) (created, total int, err error) {
	tuples, err := l.store.Expand(sel)
	if err != nil {
		return 0, 0, err
	}

	for _, t := range tuples {
		inserted, err := l.Create(productID, t)
		if err != nil {
			return created, len(tuples), err
		}
		if inserted {
			created++
		}
	}
	return created, len(tuples), nil
}

// ReplaceEntryResult reports the outcome of one vehicle entry in a Replace.
type ReplaceEntryResult struct {
	Vehicle VehicleRef `json:"vehicle"`
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
}

// Replace deletes every compatibility row of the product, then processes the
// given vehicle entries one by one: hierarchy upsert by names, then insert.
// An entry that fails is recorded and skipped; later entries still run. The
// sequence is deliberately not wrapped in one transaction, so a failure
// partway through leaves earlier entries in place.
func (l *Ledger) Replace(productID uuid.UUID, entries []VehicleRef) []ReplaceEntryResult {
	results := make([]ReplaceEntryResult, 0, len(entries))

	if _, err := l.db.Exec(`DELETE FROM compatibilities WHERE product_id = $1`, productID); err != nil {
		for _, entry := range entries {
			results = append(results, ReplaceEntryResult{
				Vehicle: entry,
				Status:  "error",
				Message: fmt.Sprintf("failed to clear existing compatibilities: %v", database.ClassifyError(err)),
			})
		}
		return results
	}

	for _, entry := range entries {
		tuple, err := l.store.UpsertVehicle(entry)
		if err != nil {
			results = append(results, ReplaceEntryResult{
				Vehicle: entry,
				Status:  "error",
				Message: err.Error(),
			})
			continue
		}
		if _, err := l.Create(productID, tuple); err != nil {
			results = append(results, ReplaceEntryResult{
				Vehicle: entry,
				Status:  "error",
				Message: err.Error(),
			})
			continue
		}
		results = append(results, ReplaceEntryResult{Vehicle: entry, Status: "created"})
	}

	return results
}

// CompatibilityDetail is a ledger row joined with the names at every level,
// ready for admin listings.
type CompatibilityDetail struct {
	ID           int64     `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	MakeID       int64     `json:"carMakeId"`
	MakeName     string    `json:"carMake"`
	ModelID      int64     `json:"carModelId"`
	ModelName    string    `json:"carModel"`
	YearID       int64     `json:"carYearId"`
	Year         int       `json:"carYear"`
	BodyTypeID   int64     `json:"carBodyTypeId"`
	BodyTypeName string    `json:"carBodyType"`
	EngineID     int64     `json:"carEngineId"`
	EngineName   string    `json:"carEngine"`
}

func (l *Ledger) FindByProduct(productID uuid.UUID) ([]CompatibilityDetail, error) {
	query := `SELECT c.id, c.product_id,
	                 c.make_id, cm.name,
	                 c.model_id, cmo.name,
	                 c.year_id, cy.year,
	                 c.body_type_id, cbt.name,
	                 c.engine_id, ce.name
	          FROM compatibilities c
	          JOIN car_makes cm ON c.make_id = cm.id
	          JOIN car_models cmo ON c.model_id = cmo.id
	          JOIN car_years cy ON c.year_id = cy.id
	          JOIN car_body_types cbt ON c.body_type_id = cbt.id
	          JOIN car_engines ce ON c.engine_id = ce.id
	          WHERE c.product_id = $1
	          ORDER BY c.id`

	rows, err := l.db.Query(query, productID)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var details []CompatibilityDetail
	for rows.Next() {
		var d CompatibilityDetail
		err := rows.Scan(
			&d.ID, &d.ProductID,
			&d.MakeID, &d.MakeName,
			&d.ModelID, &d.ModelName,
			&d.YearID, &d.Year,
			&d.BodyTypeID, &d.BodyTypeName,
			&d.EngineID, &d.EngineName,
		)
		if err != nil {
			return nil, database.ClassifyError(err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return details, nil
}

// FindMatching returns the distinct products that declare at least one
// compatibility row matching every supplied id. bodyTypeID and engineID may
// be zero to skip that level of narrowing.
func (l *Ledger) FindMatching(makeID, modelID, yearID, bodyTypeID, engineID int64) ([]models.Product, error) {
	conditions := []string{"c.make_id = $1", "c.model_id = $2", "c.year_id = $3"}
	args := []interface{}{makeID, modelID, yearID}
	argIndex := 4

	if bodyTypeID != 0 {
		conditions = append(conditions, fmt.Sprintf("c.body_type_id = $%d", argIndex))
		args = append(args, bodyTypeID)
		argIndex++
	}
	if engineID != 0 {
		conditions = append(conditions, fmt.Sprintf("c.engine_id = $%d", argIndex))
		args = append(args, engineID)
		argIndex++
	}

	query := fmt.Sprintf(`SELECT DISTINCT p.id, p.name, p.description, p.price, p.stock,
	                             p.manufacturer_id, p.category_id, p.image_url, p.created_at, p.updated_at
	                      FROM products p
	                      JOIN compatibilities c ON c.product_id = p.id
	                      WHERE %s
	                      ORDER BY p.name`, strings.Join(conditions, " AND "))

	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.ManufacturerID, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, database.ClassifyError(err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return products, nil
}

// Delete removes one compatibility row by id.
func (l *Ledger) Delete(id int64) error {
	res, err := l.db.Exec(`DELETE FROM compatibilities WHERE id = $1`, id)
	if err != nil {
		return database.ClassifyError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return database.ClassifyError(err)
	}
	if affected == 0 {
		return &database.StoreError{Kind: database.KindNotFound, Err: sql.ErrNoRows}
	}
	return nil
}
