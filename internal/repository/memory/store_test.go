package memory

import (
	"context"
	"sync"
	"testing"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoles(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	user := &model.User{Email: "ann@bistro.test", Role: model.RoleDefault}
	require.NoError(t, repos.Users.Create(ctx, user))

	res, err := repos.Users.SetRole(ctx, user.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	// Promoting twice matches without modifying
	res, err = repos.Users.SetRole(ctx, user.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &model.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)

	found, err := repos.Users.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())

	missing, err := repos.Users.FindByEmail(ctx, "ghost@bistro.test")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repos.Users.SetRole(ctx, "42", model.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestFindAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()
	require.NoError(t, repos.Menu.Create(ctx, &model.MenuItem{Name: "Soup"}))

	items, err := repos.Menu.FindAll(ctx)
	require.NoError(t, err)
	items[0].Name = "Changed"

	items, err = repos.Menu.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Soup", items[0].Name)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	var ids []string
	for _, itemID := range []string{"i1", "i2", "i3"} {
		item := &model.CartItem{ItemID: itemID, Email: "ann@bistro.test"}
		require.NoError(t, repos.Carts.Create(ctx, item))
		ids = append(ids, item.ID)
	}
	other := &model.CartItem{ItemID: "i1", Email: "bob@bistro.test"}
	require.NoError(t, repos.Carts.Create(ctx, other))

	res, err := repos.Payments.RecordCheckout(ctx, &model.Payment{Email: "ann@bistro.test", Price: 10, CartIDs: ids[:2]})
	require.NoError(t, err)
	assert.NotEmpty(t, res.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), res.DeleteResult.DeletedCount)

	left, err := repos.Carts.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, ids[2], left[0].ID)

	bobs, err := repos.Carts.FindByEmail(ctx, "bob@bistro.test")
	require.NoError(t, err)
	assert.Len(t, bobs, 1)

	n, err := repos.Payments.EstimatedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCheckout_InvalidIDStoresNothing(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	_, err := repos.Payments.RecordCheckout(ctx, &model.Payment{CartIDs: []string{"bogus"}})
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	payments, err := repos.Payments.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestConcurrentCheckouts(t *testing.T) {
	ctx := context.Background()
	repos := NewStore().Repositories()

	const buyers = 20
	ids := make([]string, buyers)
	for i := range ids {
		item := &model.CartItem{ItemID: "i1", Email: "ann@bistro.test"}
		require.NoError(t, repos.Carts.Create(ctx, item))
		ids[i] = item.ID
	}

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repos.Payments.RecordCheckout(ctx, &model.Payment{Price: 1, CartIDs: []string{id}})
			assert.NoError(t, err)
		}(ids[i])
	}
	wg.Wait()

	left, err := repos.Carts.FindByEmail(ctx, "ann@bistro.test")
	require.NoError(t, err)
	assert.Empty(t, left)

	payments, err := repos.Payments.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, payments, buyers)
}

func TestPingHonoursContext(t *testing.T) {
	s := NewStore()
	assert.NoError(t, s.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
