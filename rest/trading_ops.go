package rest

import (
	"context"
	"net/url"

	apierrors "github.com/go-tradier/tradier-go/errors"
	"github.com/go-tradier/tradier-go/rest/trading"
	"github.com/go-tradier/tradier-go/validate"
	"github.com/google/uuid"
)

// PlaceOrder validates req (component I) before transmitting it; a
// structural or business-rule Error issue aborts submission with no
// network I/O, per spec §8 scenario 2. The validation Result is always
// returned alongside the placement response so a caller can inspect
// Warning-level issues even on success.
func (c *Client) PlaceOrder(ctx context.Context, accountID string, req validate.OrderRequest) (trading.PlaceOrderResponse, validate.Result, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return trading.PlaceOrderResponse{}, validate.Result{}, err
	}
	if req.Tag == "" {
		// A client-order tag is not required by the broker, but callers that
		// reconcile fills via order_status frames need one to correlate
		// their own request with the server's response; default to a fresh
		// uuid rather than leaving it blank, per spec §3's optional
		// client-tag field.
		req.Tag = uuid.NewString()
	}
	result := validate.Order(req)
	if !result.OK() {
		return trading.PlaceOrderResponse{}, result, apierrors.NewValidationError("order failed pre-submit validation")
	}
	form := url.Values{}
	for k, v := range trading.BuildOrderForm(req) {
		form.Set(k, v)
	}
	raw, _, err := c.Do(ctx, Catalog.PlaceOrder, map[string]string{"account_id": accountID}, nil, form)
	if err != nil {
		return trading.PlaceOrderResponse{}, result, err
	}
	resp, err := trading.DecodePlaceOrderResponse(unwrap(raw, "order"))
	return resp, result, err
}

// CancelOrder cancels an open order by id.
func (c *Client) CancelOrder(ctx context.Context, accountID, orderID string) (trading.PlaceOrderResponse, error) {
	accountID, err := validate.ValidateAccountID(accountID)
	if err != nil {
		return trading.PlaceOrderResponse{}, err
	}
	orderID, err = validate.ValidateOrderID(orderID)
	if err != nil {
		return trading.PlaceOrderResponse{}, err
	}
	raw, _, err := c.Do(ctx, Catalog.CancelOrder, map[string]string{"account_id": accountID, "order_id": orderID}, nil, nil)
	if err != nil {
		return trading.PlaceOrderResponse{}, err
	}
	return trading.DecodePlaceOrderResponse(unwrap(raw, "order"))
}
