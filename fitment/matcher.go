package fitment

import (
	"fmt"
	"strings"
)

// VehicleFilter is a by-name vehicle selection applied to product or
// manufacturer listings. The rule is exact-match-or-universal: a product
// passes when one of its compatibility rows matches every supplied field, or
// when it declares no compatibility rows at all. ShowAll disables the filter.
type VehicleFilter struct {
	Make     string
	Model    string
	Year     int
	BodyType string
	Engine   string
	ShowAll  bool
}

// Active reports whether the filter contributes a clause at all.
func (f VehicleFilter) Active() bool {
	return !f.ShowAll && f.Make != ""
}

// Clause renders the filter as one SQL condition over the given product id
// column. argIndex is the placeholder number to start from; the returned int
// is the next free one. An inactive filter renders to an empty clause.
func (f VehicleFilter) Clause(productIDCol string, argIndex int) (string, []interface{}, int) {
	if !f.Active() {
		return "", nil, argIndex
	}

	matchConds := []string{fmt.Sprintf("fc.product_id = %s", productIDCol)}
	var args []interface{}

	add := func(cond string, arg interface{}) {
		matchConds = append(matchConds, fmt.Sprintf(cond, argIndex))
		args = append(args, arg)
		argIndex++
	}

	add("fcm.name = $%d", f.Make)
	if f.Model != "" {
		add("fcmo.name = $%d", f.Model)
	}
	if f.Year != 0 {
		add("fcy.year = $%d", f.Year)
	}
	if f.BodyType != "" {
		add("fcbt.name = $%d", f.BodyType)
	}
	if f.Engine != "" {
		add("fce.name = $%d", f.Engine)
	}

	clause := fmt.Sprintf(`(NOT EXISTS (
		SELECT 1 FROM compatibilities fc WHERE fc.product_id = %s
	) OR EXISTS (
		SELECT 1 FROM compatibilities fc
		JOIN car_makes fcm ON fc.make_id = fcm.id
		JOIN car_models fcmo ON fc.model_id = fcmo.id
		JOIN car_years fcy ON fc.year_id = fcy.id
		JOIN car_body_types fcbt ON fc.body_type_id = fcbt.id
		JOIN car_engines fce ON fc.engine_id = fce.id
		WHERE %s
	))`, productIDCol, strings.Join(matchConds, " AND "))

	return clause, args, argIndex
}
