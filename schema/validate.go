package schema

import "fmt"

// IssueSeverity ranks how serious a single validation finding is. It is
// shared between response validation (this file) and order validation
// (package validate) so both can report through the same Result/Issue
// shape described in spec's data model.
type IssueSeverity int

// Values for IssueSeverity, ordered so severity comparison is a plain `>=`.
const (
	SeverityInfo IssueSeverity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns a lowercase display form of the severity.
func (s IssueSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Issue is a single validation finding.
type Issue struct {
	Field      string
	Severity   IssueSeverity
	Message    string
	Expected   string
	Actual     string
	Suggestion string
}

// Result is the outcome of a validation pass: ok is false whenever any
// issue reaches SeverityError or above.
type Result struct {
	Issues []Issue
}

// OK reports whether the result contains no issue at SeverityError or
// above.
func (r Result) OK() bool {
	for _, i := range r.Issues {
		if i.Severity >= SeverityError {
			return false
		}
	}
	return true
}

// Add appends an issue to the result and returns the result for chaining.
func (r *Result) Add(issue Issue) *Result {
	r.Issues = append(r.Issues, issue)
	return r
}

// Errors returns only the issues at SeverityError or above.
func (r Result) Errors() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity >= SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// Level selects how strict response validation is.
type Level int

// Values for Level, in increasing strictness. Raising the level only adds
// checks — it never removes or downgrades a check a lower level already
// performed (the validator-monotonicity property from spec §8).
const (
	LevelNone Level = iota
	LevelBasic
	LevelStrict
	LevelParanoid
)

// Validate checks a decoded response (given as a generic field->value map,
// the shape rest/* decoders expose alongside their typed struct) against
// the field registry for class, at the requested level. It never mutates
// the decoded value; it only produces a report.
//
// Basic: presence of required fields.
// Strict: Basic + type compatibility + constraint checks + the cross-field
// check that limit/stop_limit orders carry a price.
// Paranoid: Strict + business rules (market orders should be Day duration;
// a quantity-reconciliation warning for order records).
func Validate(class ResponseClass, fields map[string]interface{}, level Level) Result {
	var result Result
	if level == LevelNone {
		return result
	}

	for _, name := range RequiredFields(class) {
		v, present := fields[name]
		if !present || isNilOrEmpty(v) {
			result.Add(Issue{
				Field: name, Severity: SeverityError,
				Message: fmt.Sprintf("required field %q is missing", name),
			})
		}
	}

	if level == LevelBasic {
		return result
	}

	registryFields := Fields(class)
	for name, v := range fields {
		info, ok := registryFields[name]
		if !ok || isNilOrEmpty(v) {
			continue
		}
		checkType(&result, info, v)
		checkConstraints(&result, info, v)
	}
	checkCrossField(&result, class, fields)

	if level == LevelParanoid {
		checkBusinessRules(&result, class, fields)
	}

	return result
}

func isNilOrEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

func checkType(result *Result, info FieldInfo, v interface{}) {
	switch info.Type {
	case FieldString, FieldEnum, FieldDate, FieldDateTime:
		if _, ok := v.(string); !ok {
			result.Add(Issue{
				Field: info.Name, Severity: SeverityError,
				Message:  fmt.Sprintf("field %q should be a string", info.Name),
				Expected: "string",
			})
		}
	case FieldInteger, FieldDouble:
		switch v.(type) {
		case float64, int, int64:
		default:
			result.Add(Issue{
				Field: info.Name, Severity: SeverityError,
				Message:  fmt.Sprintf("field %q should be numeric", info.Name),
				Expected: "number",
			})
		}
	case FieldBoolean:
		if _, ok := v.(bool); !ok {
			result.Add(Issue{
				Field: info.Name, Severity: SeverityError,
				Message:  fmt.Sprintf("field %q should be a boolean", info.Name),
				Expected: "boolean",
			})
		}
	case FieldArray:
		if _, ok := v.([]interface{}); !ok {
			result.Add(Issue{
				Field: info.Name, Severity: SeverityWarning,
				Message: fmt.Sprintf("field %q should be an array", info.Name),
			})
		}
	}
	if info.Type == FieldEnum && len(info.ValidValues) > 0 {
		if s, ok := v.(string); ok {
			valid := false
			for _, vv := range info.ValidValues {
				if vv == s {
					valid = true
					break
				}
			}
			if !valid {
				result.Add(Issue{
					Field: info.Name, Severity: SeverityWarning,
					Message: fmt.Sprintf("field %q has value %q outside the known enum set", info.Name, s),
					Actual:  s,
				})
			}
		}
	}
}

func checkConstraints(result *Result, info FieldInfo, v interface{}) {
	for _, c := range info.Constraints {
		switch c.Rule {
		case RulePositiveNumber:
			if n, ok := asFloat(v); ok && n <= 0 {
				result.Add(Issue{
					Field: info.Name, Severity: SeverityError,
					Message:  c.Message,
					Expected: "> 0",
					Actual:   fmt.Sprintf("%v", v),
				})
			}
		case RuleMinValue:
			if n, ok := asFloat(v); ok && n < c.FloatValue {
				result.Add(Issue{Field: info.Name, Severity: SeverityError, Message: c.Message})
			}
		case RuleMaxValue:
			if n, ok := asFloat(v); ok && n > c.FloatValue {
				result.Add(Issue{Field: info.Name, Severity: SeverityError, Message: c.Message})
			}
		case RuleMinLength:
			if s, ok := v.(string); ok && len(s) < c.IntValue {
				result.Add(Issue{Field: info.Name, Severity: SeverityError, Message: c.Message})
			}
		case RuleMaxLength:
			if s, ok := v.(string); ok && len(s) > c.IntValue {
				result.Add(Issue{Field: info.Name, Severity: SeverityError, Message: c.Message})
			}
		case RuleNonEmpty:
			if s, ok := v.(string); ok && s == "" {
				result.Add(Issue{Field: info.Name, Severity: SeverityError, Message: c.Message})
			}
		}
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// checkCrossField implements the strict-level cross-field rule named by
// spec §4.J: limit and stop_limit orders must carry a price.
func checkCrossField(result *Result, class ResponseClass, fields map[string]interface{}) {
	if class != ClassOrder {
		return
	}
	orderType, _ := fields["type"].(string)
	if orderType == "limit" || orderType == "stop_limit" {
		if isNilOrEmpty(fields["price"]) {
			result.Add(Issue{
				Field: "price", Severity: SeverityError,
				Message:    fmt.Sprintf("%s orders must carry a price", orderType),
				Suggestion: "decode a price before trusting this order record",
			})
		}
	}
}

// checkBusinessRules implements the paranoid-level rules: market orders
// should be Day duration, and the exec_quantity + remaining_quantity ==
// quantity reconciliation from spec §3 (a warning, never a decode
// failure).
func checkBusinessRules(result *Result, class ResponseClass, fields map[string]interface{}) {
	if class != ClassOrder {
		return
	}
	if orderType, _ := fields["type"].(string); orderType == "market" {
		if duration, _ := fields["duration"].(string); duration != "" && duration != "day" {
			result.Add(Issue{
				Field: "duration", Severity: SeverityWarning,
				Message: "market orders are expected to use day duration",
				Actual:  duration,
			})
		}
	}
	qty, qtyOK := asFloat(fields["quantity"])
	exec, execOK := asFloat(fields["exec_quantity"])
	remaining, remOK := asFloat(fields["remaining_quantity"])
	if qtyOK && execOK && remOK && exec+remaining != qty {
		result.Add(Issue{
			Field: "quantity", Severity: SeverityWarning,
			Message:  "exec_quantity + remaining_quantity does not equal quantity",
			Expected: fmt.Sprintf("%v", qty),
			Actual:   fmt.Sprintf("%v", exec+remaining),
		})
	}
}
