package fitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleFilterInactive(t *testing.T) {
	// No make selected: nothing to filter on.
	clause, args, next := VehicleFilter{}.Clause("p.id", 1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)

	// Override disables the filter even with a full selection.
	full := VehicleFilter{Make: "BMW", Model: "X5", Year: 2020, BodyType: "SUV", Engine: "3.0i", ShowAll: true}
	clause, args, next = full.Clause("p.id", 1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
	assert.Equal(t, 1, next)
	assert.False(t, full.Active())
}

func TestVehicleFilterFullSelection(t *testing.T) {
	filter := VehicleFilter{Make: "BMW", Model: "X5", Year: 2020, BodyType: "SUV", Engine: "3.0i"}

	clause, args, next := filter.Clause("p.id", 3)
	assert.Equal(t, []interface{}{"BMW", "X5", 2020, "SUV", "3.0i"}, args)
	assert.Equal(t, 8, next)

	// Universal products (no rows at all) must pass.
	assert.Contains(t, clause, "NOT EXISTS")
	assert.Contains(t, clause, "fc.product_id = p.id")

	// Exact match side binds every level by name, numbered from argIndex.
	assert.Contains(t, clause, "fcm.name = $3")
	assert.Contains(t, clause, "fcmo.name = $4")
	assert.Contains(t, clause, "fcy.year = $5")
	assert.Contains(t, clause, "fcbt.name = $6")
	assert.Contains(t, clause, "fce.name = $7")
}

func TestVehicleFilterPartialSelection(t *testing.T) {
	filter := VehicleFilter{Make: "Toyota", Model: "Corolla"}

	clause, args, next := filter.Clause("p.id", 1)
	assert.Equal(t, []interface{}{"Toyota", "Corolla"}, args)
	assert.Equal(t, 3, next)
	assert.Contains(t, clause, "fcm.name = $1")
	assert.Contains(t, clause, "fcmo.name = $2")
	assert.NotContains(t, clause, "fcy.year =")
	assert.NotContains(t, clause, "fcbt.name =")
	assert.NotContains(t, clause, "fce.name =")
}
