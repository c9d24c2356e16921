package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItem_KeepsUnknownFields(t *testing.T) {
	body := `{"email":"a@b.com","menuItemId":"m1","category":"salad","name":"Caesar","tags":["green"],"price":9.5}`

	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(body), &item))
	assert.Equal(t, "Caesar", item.Name)
	assert.Equal(t, 9.5, item.Price)
	assert.Equal(t, Extra{"menuItemId": "m1", "category": "salad", "tags": []any{"green"}}, item.Extra)

	item.ID = "c1"
	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","itemId":"","email":"a@b.com","menuItemId":"m1","category":"salad","name":"Caesar","tags":["green"],"price":9.5}`, string(out))
}

func TestCartItem_WithoutExtraMarshalsPlain(t *testing.T) {
	out, err := json.Marshal(CartItem{ID: "c1", ItemID: "x", Email: "a@b.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","itemId":"x","email":"a@b.com"}`, string(out))
}

func TestCartItem_RejectsMalformedJSON(t *testing.T) {
	var item CartItem
	assert.Error(t, json.Unmarshal([]byte(`{"email":`), &item))
	assert.Error(t, json.Unmarshal([]byte(`{"price":"free"}`), &item))
}

func TestRegisterUserRequest_ReservedKeysStayOut(t *testing.T) {
	body := `{"email":"a@b.com","name":"Ann","password":"pw","phone":"555-0100",
		"role":"admin","_id":"mine","createdAt":"2020-01-01T00:00:00Z","passwordHash":"x"}`

	var req RegisterUserRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, "pw", req.Password)
	assert.Equal(t, Extra{"phone": "555-0100"}, req.Extra)
}

func TestUser_MarshalMergesExtra(t *testing.T) {
	user := User{
		ID:           "u1",
		Email:        "a@b.com",
		Role:         RoleDefault,
		PasswordHash: "secret-hash",
		Extra:        Extra{"phone": "555-0100", "role": "admin"},
	}

	out, err := json.Marshal(user)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "555-0100", got["phone"])
	// Typed fields win over extras with the same key
	assert.Equal(t, RoleDefault, got["role"])
	assert.NotContains(t, string(out), "secret-hash")
}

func TestExtra_Without(t *testing.T) {
	extra := Extra{"a": 1, "b": 2}
	assert.Equal(t, Extra{"b": 2}, extra.Without("a"))
	assert.Len(t, extra, 2)
	assert.Nil(t, extra.Without("a", "b"))
	assert.Nil(t, Extra(nil).Without("a"))
}
