package schema

// orderFields describes the server-returned order record of spec §3: id,
// class, symbol, side, quantity, type, duration, status are required;
// price/stop/avg_fill_price are optional pending order state.
func orderFields() map[string]FieldInfo {
	return map[string]FieldInfo{
		"id": {
			Name: "id", Description: "Broker-assigned order identifier", Type: FieldInteger,
			Required: true, Example: "123456789", Category: "identity",
			Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "order id must be positive"}},
		},
		"class": {
			Name: "class", Description: "Order class", Type: FieldEnum, Required: true,
			ValidValues: []string{"equity", "option", "multileg", "combo", "oto", "oco", "otoco"},
			Category:    "classification",
		},
		"symbol": {
			Name: "symbol", Description: "Underlying or option symbol", Type: FieldString, Required: true,
			Constraints: []Constraint{{Rule: RulePattern, StringValue: `^[A-Z0-9.^-]{1,10}$`, Message: "must be a valid ticker symbol"}},
			Category:    "identity",
		},
		"side": {
			Name: "side", Description: "Order side", Type: FieldEnum, Required: true,
			ValidValues: []string{"buy", "sell", "sell_short", "buy_to_open", "buy_to_close", "sell_to_open", "sell_to_close"},
			Category:    "classification",
		},
		"quantity": {
			Name: "quantity", Description: "Order quantity", Type: FieldDouble, Required: true,
			Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "quantity must be positive"}},
			Category:    "sizing",
		},
		"type": {
			Name: "type", Description: "Order type", Type: FieldEnum, Required: true,
			ValidValues: []string{"market", "limit", "stop", "stop_limit"},
			Category:    "classification",
		},
		"duration": {
			Name: "duration", Description: "Order time in force", Type: FieldEnum, Required: true,
			ValidValues: []string{"day", "gtc", "pre", "post"},
			Category:    "classification",
		},
		"status": {
			Name: "status", Description: "Order lifecycle status", Type: FieldEnum, Required: true,
			ValidValues: []string{"open", "partially_filled", "filled", "expired", "canceled", "pending", "rejected"},
			Category:    "lifecycle",
		},
		"price": {
			Name: "price", Description: "Limit price", Type: FieldOptional, Category: "pricing",
			Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "price must be positive when present"}},
		},
		"stop_price": {
			Name: "stop_price", Description: "Stop price", Type: FieldOptional, Category: "pricing",
			Constraints: []Constraint{{Rule: RulePositiveNumber, Message: "stop price must be positive when present"}},
		},
		"avg_fill_price": {
			Name: "avg_fill_price", Description: "Average fill price across executions", Type: FieldOptional, Category: "execution",
		},
		"exec_quantity": {
			Name: "exec_quantity", Description: "Quantity executed so far", Type: FieldDouble, Category: "execution",
		},
		"last_fill_price": {
			Name: "last_fill_price", Description: "Price of the most recent fill", Type: FieldOptional, Category: "execution",
		},
		"last_fill_quantity": {
			Name: "last_fill_quantity", Description: "Quantity of the most recent fill", Type: FieldOptional, Category: "execution",
		},
		"remaining_quantity": {
			Name: "remaining_quantity", Description: "Quantity still outstanding", Type: FieldDouble, Category: "execution",
		},
		"create_date": {
			Name: "create_date", Description: "Order creation timestamp", Type: FieldDateTime, Category: "lifecycle",
		},
		"transaction_date": {
			Name: "transaction_date", Description: "Last transaction timestamp", Type: FieldDateTime, Category: "lifecycle",
		},
		"legs": {
			Name: "legs", Description: "Child legs for multileg/combo/bracket orders", Type: FieldArray, Category: "composition",
		},
		"tag": {
			Name: "tag", Description: "Caller-supplied client order tag", Type: FieldOptional, Category: "identity",
			Constraints: []Constraint{{Rule: RuleMaxLength, IntValue: 255, Message: "tag must be at most 255 characters"}},
		},
	}
}
