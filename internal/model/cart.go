package model

import "encoding/json"

// CartItem is a snapshot of a menu item placed in a user's cart.
// Email is the tenant key; it is matched at query time, not enforced.
type CartItem struct {
	ID     string  `json:"_id"`
	ItemID string  `json:"itemId"`
	Email  string  `json:"email"`
	Name   string  `json:"name,omitempty"`
	Image  string  `json:"image,omitempty"`
	Price  float64 `json:"price,omitempty"`
	Extra  Extra   `json:"-"`
}

type cartItemJSON CartItem

var cartItemFields = jsonNames(cartItemJSON{})

func (c CartItem) MarshalJSON() ([]byte, error) {
	return mergeExtra(cartItemJSON(c), c.Extra)
}

// UnmarshalJSON keeps fields without a typed counterpart in Extra
func (c *CartItem) UnmarshalJSON(data []byte) error {
	var typed cartItemJSON
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	extra, err := splitExtra(data, cartItemFields)
	if err != nil {
		return err
	}
	*c = CartItem(typed)
	c.Extra = extra
	return nil
}
