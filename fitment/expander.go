package fitment

import (
	"fmt"

	"github.com/zodmy/SiriusAuto-sub001/database"
)

// Expand enumerates every concrete vehicle tuple in the subtree rooted at the
// given partial selection. An empty subtree yields an empty slice, not an
// error. The selection must pass Validate first; Expand enforces that.
func (s *Store) Expand(sel Selection) ([]Tuple, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	// A full tuple needs no expansion.
	if sel.EngineID != 0 {
		return []Tuple{{
			MakeID:     sel.MakeID,
			ModelID:    sel.ModelID,
			YearID:     sel.YearID,
			BodyTypeID: sel.BodyTypeID,
			EngineID:   sel.EngineID,
		}}, nil
	}

	// One join over the whole hierarchy, filtered at the deepest level the
	// selection pins down; the cross product of everything below falls out
	// of the join.
	query := `SELECT mo.make_id, y.model_id, bt.year_id, e.body_type_id, e.id
	          FROM car_engines e
	          JOIN car_body_types bt ON e.body_type_id = bt.id
	          JOIN car_years y ON bt.year_id = y.id
	          JOIN car_models mo ON y.model_id = mo.id
	          WHERE %s = $1
	          ORDER BY e.id`

	var filterCol string
	var filterArg int64
	switch {
	case sel.BodyTypeID != 0:
		filterCol, filterArg = "e.body_type_id", sel.BodyTypeID
	case sel.YearID != 0:
		filterCol, filterArg = "bt.year_id", sel.YearID
	case sel.ModelID != 0:
		filterCol, filterArg = "y.model_id", sel.ModelID
	default:
		filterCol, filterArg = "mo.make_id", sel.MakeID
	}

	rows, err := s.db.Query(fmt.Sprintf(query, filterCol), filterArg)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	var tuples []Tuple
	for rows.Next() {
		var t Tuple
		if err := rows.Scan(&t.MakeID, &t.ModelID, &t.YearID, &t.BodyTypeID, &t.EngineID); err != nil {
			return nil, database.ClassifyError(err)
		}
		tuples = append(tuples, t)
	}
	if err := rows.Err(); err != nil {
		return nil, database.ClassifyError(err)
	}

	return tuples, nil
}
