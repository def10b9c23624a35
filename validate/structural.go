package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// structTagValidator runs the struct-tag layer spec §4.I splits out from
// the hand-written business-rule pass: "gt=0"/"gte=0" range checks that
// apply uniformly regardless of order class. It is package-level because
// validator.New() compiles and caches tag parsing per type on first use.
var structTagValidator = validator.New()

// validateLegStructure runs the struct-tag pass over leg and folds any
// failure into result as an Error issue, ahead of the leg-specific
// business rules in validateLeg.
func validateLegStructure(result *Result, index int, leg Leg) {
	if err := structTagValidator.Struct(leg); err != nil {
		field := fmt.Sprintf("legs[%d]", index)
		for _, fe := range err.(validator.ValidationErrors) {
			result.Add(Issue{
				Field:    field + "." + fe.Field(),
				Severity: sevError,
				Message:  fmt.Sprintf("%s failed structural check %q", fe.Field(), fe.Tag()),
			})
		}
	}
}
