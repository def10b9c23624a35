package rest

import (
	"context"

	"github.com/go-tradier/tradier-go/rest/user"
)

// Profile fetches the authenticated user's profile, including the list of
// accounts accessible with the current token.
func (c *Client) Profile(ctx context.Context) (user.Profile, error) {
	raw, _, err := c.Do(ctx, Catalog.UserProfile, nil, nil, nil)
	if err != nil {
		return user.Profile{}, err
	}
	return user.DecodeProfile(raw)
}
