package schema

import "testing"

func TestValidateLevelNoneProducesNoIssues(t *testing.T) {
	result := Validate(ClassOrder, map[string]interface{}{}, LevelNone)
	if len(result.Issues) != 0 {
		t.Errorf("expected no issues at LevelNone, got %v", result.Issues)
	}
}

func TestValidateBasicCatchesMissingRequiredField(t *testing.T) {
	fields := map[string]interface{}{
		"id": float64(123), "class": "equity", "symbol": "AAPL",
		// side, quantity, type, duration, status intentionally missing
	}
	result := Validate(ClassOrder, fields, LevelBasic)
	if result.OK() {
		t.Fatal("expected validation to fail with missing required fields")
	}
	foundSide := false
	for _, issue := range result.Errors() {
		if issue.Field == "side" {
			foundSide = true
		}
	}
	if !foundSide {
		t.Errorf("expected an error issue on field 'side', got %v", result.Issues)
	}
}

func completeOrderFields() map[string]interface{} {
	return map[string]interface{}{
		"id": float64(123), "class": "equity", "symbol": "AAPL", "side": "buy",
		"quantity": float64(100), "type": "market", "duration": "day", "status": "filled",
		"exec_quantity": float64(100), "remaining_quantity": float64(0),
	}
}

func TestValidateBasicPassesOnCompleteRecord(t *testing.T) {
	result := Validate(ClassOrder, completeOrderFields(), LevelBasic)
	if !result.OK() {
		t.Errorf("expected OK, got issues: %v", result.Issues)
	}
}

func TestValidateStrictCatchesLimitOrderWithoutPrice(t *testing.T) {
	fields := completeOrderFields()
	fields["type"] = "limit"
	result := Validate(ClassOrder, fields, LevelStrict)
	if result.OK() {
		t.Fatal("expected strict validation to flag a limit order without a price")
	}
}

func TestValidateStrictPassesOnLimitOrderWithPrice(t *testing.T) {
	fields := completeOrderFields()
	fields["type"] = "limit"
	fields["price"] = float64(150.0)
	result := Validate(ClassOrder, fields, LevelStrict)
	if !result.OK() {
		t.Errorf("expected OK, got issues: %v", result.Issues)
	}
}

func TestValidateParanoidWarnsOnMarketOrderNotDay(t *testing.T) {
	fields := completeOrderFields()
	fields["duration"] = "gtc"
	result := Validate(ClassOrder, fields, LevelParanoid)
	if result.OK() == false {
		t.Fatalf("a warning must not make the result non-OK, got: %v", result.Issues)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Field == "duration" && issue.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duration warning, got %v", result.Issues)
	}
}

func TestValidateParanoidWarnsOnQuantityMismatch(t *testing.T) {
	fields := completeOrderFields()
	fields["exec_quantity"] = float64(50)
	fields["remaining_quantity"] = float64(40) // 50+40 != 100
	result := Validate(ClassOrder, fields, LevelParanoid)
	if !result.OK() {
		t.Fatalf("quantity mismatch should be a warning, not an error: %v", result.Issues)
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Field == "quantity" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a quantity reconciliation warning, got %v", result.Issues)
	}
}

func TestValidatorMonotonicity(t *testing.T) {
	// Raising the level should never remove an Error issue or downgrade it.
	fields := map[string]interface{}{"id": float64(1)} // missing everything else
	basic := Validate(ClassOrder, fields, LevelBasic)
	strict := Validate(ClassOrder, fields, LevelStrict)
	paranoid := Validate(ClassOrder, fields, LevelParanoid)

	basicErrors := len(basic.Errors())
	strictErrors := len(strict.Errors())
	paranoidErrors := len(paranoid.Errors())

	if strictErrors < basicErrors {
		t.Errorf("strict has fewer errors (%d) than basic (%d)", strictErrors, basicErrors)
	}
	if paranoidErrors < strictErrors {
		t.Errorf("paranoid has fewer errors (%d) than strict (%d)", paranoidErrors, strictErrors)
	}
}

func TestValidateEnumOutsideKnownSetWarns(t *testing.T) {
	fields := completeOrderFields()
	fields["status"] = "some_new_status_the_broker_added"
	result := Validate(ClassOrder, fields, LevelStrict)
	if !result.OK() {
		t.Fatalf("unknown enum value should warn, not error: %v", result.Issues)
	}
}

func TestRequiredFieldsAndFieldExists(t *testing.T) {
	if !FieldExists(ClassOrder, "symbol") {
		t.Error("expected 'symbol' to exist on ClassOrder")
	}
	if FieldExists(ClassOrder, "not_a_real_field") {
		t.Error("did not expect 'not_a_real_field' to exist")
	}
	required := RequiredFields(ClassOrder)
	if len(required) == 0 {
		t.Error("expected ClassOrder to declare required fields")
	}
}
