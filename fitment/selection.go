package fitment

import (
	"errors"
	"strings"
)

// Tuple is one concrete vehicle configuration: one row at every level of the
// make -> model -> year -> body type -> engine hierarchy.
type Tuple struct {
	MakeID     int64
	ModelID    int64
	YearID     int64
	BodyTypeID int64
	EngineID   int64
}

// Selection is a partial vehicle selection. A zero id means the level is not
// selected. Levels must form a contiguous prefix starting at the make.
type Selection struct {
	MakeID     int64
	ModelID    int64
	YearID     int64
	BodyTypeID int64
	EngineID   int64
}

var (
	ErrMakeRequired     = errors.New("fitment: a car make is required")
	ErrSelectionGap     = errors.New("fitment: selection levels must form a contiguous prefix")
	ErrBlankName        = errors.New("fitment: name must not be blank")
	ErrInvalidYear      = errors.New("fitment: year must be positive")
	ErrIncompleteRef    = errors.New("fitment: vehicle reference must name all five levels")
	ErrInconsistentLink = errors.New("fitment: ids do not form a consistent hierarchy chain")
)

// Validate rejects selections that would make expansion ambiguous: the make
// must be present, and no level may be set unless every level above it is.
func (s Selection) Validate() error {
	if s.MakeID == 0 {
		return ErrMakeRequired
	}
	ids := []int64{s.ModelID, s.YearID, s.BodyTypeID, s.EngineID}
	seenGap := false
	for _, id := range ids {
		if id == 0 {
			seenGap = true
		} else if seenGap {
			return ErrSelectionGap
		}
	}
	return nil
}

// VehicleRef names one concrete vehicle configuration by natural keys rather
// than ids, as bulk import payloads do.
type VehicleRef struct {
	CarMake     string `json:"carMake"`
	CarModel    string `json:"carModel"`
	CarYear     int    `json:"carYear"`
	CarBodyType string `json:"carBodyType"`
	CarEngine   string `json:"carEngine"`
}

func (r VehicleRef) Validate() error {
	if strings.TrimSpace(r.CarMake) == "" ||
		strings.TrimSpace(r.CarModel) == "" ||
		strings.TrimSpace(r.CarBodyType) == "" ||
		strings.TrimSpace(r.CarEngine) == "" {
		return ErrIncompleteRef
	}
	if r.CarYear <= 0 {
		return ErrInvalidYear
	}
	return nil
}
