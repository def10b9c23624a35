// Package user holds the decoded response type for the user-profile
// endpoint, grounded on original_source/include/oqdTradierpp/user.hpp.
package user

import "encoding/json"

// Account is a single brokerage account summary nested under a profile.
type Account struct {
	AccountNumber string `json:"account_number"`
	Classification string `json:"classification,omitempty"`
	DayTrader     bool   `json:"day_trader,omitempty"`
	OptionLevel   int    `json:"option_level,omitempty"`
	Status        string `json:"status,omitempty"`
	Type          string `json:"type,omitempty"`
}

// Profile is the authenticated user's profile response.
type Profile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Accounts []Account `json:"account,omitempty"`
}

// DecodeProfile decodes the profile response, tolerant of the broker
// sometimes nesting a single account object instead of an array under
// "account" (the same single-vs-array inconsistency spec §4.L documents
// for collection endpoints).
func DecodeProfile(raw json.RawMessage) (Profile, error) {
	var envelope struct {
		Profile struct {
			ID      string          `json:"id"`
			Name    string          `json:"name"`
			Account json.RawMessage `json:"account,omitempty"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Profile{}, err
	}
	profile := Profile{ID: envelope.Profile.ID, Name: envelope.Profile.Name}
	if len(envelope.Profile.Account) > 0 && string(envelope.Profile.Account) != "null" {
		var many []Account
		if err := json.Unmarshal(envelope.Profile.Account, &many); err == nil {
			profile.Accounts = many
		} else {
			var one Account
			if err := json.Unmarshal(envelope.Profile.Account, &one); err != nil {
				return Profile{}, err
			}
			profile.Accounts = []Account{one}
		}
	}
	return profile, nil
}
