// Package schema is the single source of truth for the wire-level shape of
// every decoded response: which fields each response class carries, which
// are required, and what constraints apply to each. rest/*'s decoders stay
// tolerant (missing/null -> zero value, per the decoder contract) and defer
// required-field and constraint enforcement to Validate, which walks this
// registry.
package schema

// FieldType is the semantic type of a registered field, independent of its
// Go decode type (an Optional double and a required double both decode to
// float64; only the registry distinguishes them for validation purposes).
type FieldType string

// Values for FieldType.
const (
	FieldString   FieldType = "string"
	FieldInteger  FieldType = "integer"
	FieldDouble   FieldType = "double"
	FieldBoolean  FieldType = "boolean"
	FieldDate     FieldType = "date"
	FieldDateTime FieldType = "datetime"
	FieldEnum     FieldType = "enum"
	FieldArray    FieldType = "array"
	FieldObject   FieldType = "object"
	FieldOptional FieldType = "optional"
)

// ConstraintRule is the kind of constraint carried by a Constraint value.
type ConstraintRule string

// Values for ConstraintRule.
const (
	RuleMinLength      ConstraintRule = "min_length"
	RuleMaxLength      ConstraintRule = "max_length"
	RuleMinValue       ConstraintRule = "min_value"
	RuleMaxValue       ConstraintRule = "max_value"
	RulePattern        ConstraintRule = "pattern"
	RuleOneOf          ConstraintRule = "one_of"
	RulePositiveNumber ConstraintRule = "positive_number"
	RuleNonEmpty       ConstraintRule = "non_empty"
)

// Constraint is a single validation rule attached to a field. Exactly one
// of the value fields is meaningful, selected by Rule — this is the Go
// tagged-union rendering of the original's std::variant<string,int,double,
// []string> associated value (see §9's "dynamic runtime reflection" note).
type Constraint struct {
	Rule         ConstraintRule
	IntValue     int
	FloatValue   float64
	StringValue  string
	StringValues []string
	Message      string
}

// FieldInfo describes one field of a response class.
type FieldInfo struct {
	Name        string
	Description string
	Type        FieldType
	Required    bool
	Constraints []Constraint
	Example     string
	ValidValues []string
	Category    string
}

// ResponseClass identifies one decoded response shape, used to key the
// field registry and as the input to Validate.
type ResponseClass string

// Values for ResponseClass.
const (
	ClassOrder           ResponseClass = "order"
	ClassAccountBalances ResponseClass = "account_balances"
	ClassPosition        ResponseClass = "position"
	ClassQuote           ResponseClass = "quote"
	ClassHistorical      ResponseClass = "historical"
	ClassGainLoss        ResponseClass = "gain_loss"
	ClassHistory         ResponseClass = "history"
	ClassAccessToken     ResponseClass = "access_token"
	ClassClock           ResponseClass = "clock"
	ClassCalendar        ResponseClass = "calendar"
	ClassWatchlist       ResponseClass = "watchlist"
	ClassSymbolSearch    ResponseClass = "symbol_search"
	ClassOptionChain     ResponseClass = "option_chain"
	ClassTimeSales       ResponseClass = "time_sales"
	ClassStreaming       ResponseClass = "streaming"
)

// registry is the static ResponseClass -> field-name -> FieldInfo table.
// Populated once at package init from the per-class builder functions in
// fields_*.go, mirroring FieldReference::get_all_field_maps() lazily
// building one unordered_map per ResponseType.
var registry = buildRegistry()

func buildRegistry() map[ResponseClass]map[string]FieldInfo {
	return map[ResponseClass]map[string]FieldInfo{
		ClassOrder:           orderFields(),
		ClassAccountBalances: balanceFields(),
		ClassPosition:        positionFields(),
		ClassQuote:           quoteFields(),
		ClassHistorical:      historicalFields(),
		ClassGainLoss:        gainLossFields(),
		ClassHistory:         historyFields(),
		ClassAccessToken:     accessTokenFields(),
		ClassClock:           clockFields(),
		ClassCalendar:        calendarFields(),
		ClassWatchlist:       watchlistFields(),
		ClassSymbolSearch:    symbolSearchFields(),
		ClassOptionChain:     optionChainFields(),
		ClassTimeSales:       timeSalesFields(),
		ClassStreaming:       streamingFields(),
	}
}

// Fields returns the full field map for class, or nil if class is not
// registered.
func Fields(class ResponseClass) map[string]FieldInfo { return registry[class] }

// FieldExists reports whether name is a registered field of class.
func FieldExists(class ResponseClass, name string) bool {
	_, ok := registry[class][name]
	return ok
}

// Field returns the FieldInfo for name within class, and whether it was
// found.
func Field(class ResponseClass, name string) (FieldInfo, bool) {
	f, ok := registry[class][name]
	return f, ok
}

// IsRequired reports whether name is a required field of class. An
// unregistered field is never considered required.
func IsRequired(class ResponseClass, name string) bool {
	f, ok := registry[class][name]
	return ok && f.Required
}

// RequiredFields returns the names of every required field of class.
func RequiredFields(class ResponseClass) []string {
	var names []string
	for name, f := range registry[class] {
		if f.Required {
			names = append(names, name)
		}
	}
	return names
}

// FieldsByCategory returns the names of every field of class tagged with
// category.
func FieldsByCategory(class ResponseClass, category string) []string {
	var names []string
	for name, f := range registry[class] {
		if f.Category == category {
			names = append(names, name)
		}
	}
	return names
}
