package fitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		wantErr error
	}{
		{"make only", Selection{MakeID: 1}, nil},
		{"make and model", Selection{MakeID: 1, ModelID: 2}, nil},
		{"down to year", Selection{MakeID: 1, ModelID: 2, YearID: 3}, nil},
		{"down to body type", Selection{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4}, nil},
		{"full tuple", Selection{MakeID: 1, ModelID: 2, YearID: 3, BodyTypeID: 4, EngineID: 5}, nil},
		{"empty", Selection{}, ErrMakeRequired},
		{"missing make", Selection{ModelID: 2}, ErrMakeRequired},
		{"year without model", Selection{MakeID: 1, YearID: 3}, ErrSelectionGap},
		{"engine without body type", Selection{MakeID: 1, ModelID: 2, YearID: 3, EngineID: 5}, ErrSelectionGap},
		{"engine only below make", Selection{MakeID: 1, EngineID: 5}, ErrSelectionGap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVehicleRefValidate(t *testing.T) {
	valid := VehicleRef{CarMake: "BMW", CarModel: "X5", CarYear: 2020, CarBodyType: "SUV", CarEngine: "3.0i"}
	assert.NoError(t, valid.Validate())

	missingEngine := valid
	missingEngine.CarEngine = ""
	assert.ErrorIs(t, missingEngine.Validate(), ErrIncompleteRef)

	blankMake := valid
	blankMake.CarMake = "   "
	assert.ErrorIs(t, blankMake.Validate(), ErrIncompleteRef)

	badYear := valid
	badYear.CarYear = 0
	assert.ErrorIs(t, badYear.Validate(), ErrInvalidYear)
}
