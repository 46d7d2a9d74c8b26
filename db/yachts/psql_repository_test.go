package yachts_test

import (
	"context"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letgonow/db"
	"letgonow/db/yachts"
	"letgonow/entity"
)

func TestYachtsRepository_Store_idempotency(t *testing.T) {
	ctx := context.Background()
	container, url := db.StartPostgresContainer()
	defer container.Terminate(ctx)

	t.Setenv("POSTGRES_URL", url)
	repo := yachts.NewPostgresRepository(db.GetDb(t))

	yacht := entity.Yacht{
		YachtID:     "ambassador-cruise",
		Name:        "Ambassador Cruise",
		Description: "Five-star day cruise.",
		Location:    "Ha Long Bay",
		Rooms: []entity.Room{
			{RoomID: "ambassador-suite", Name: "Ambassador Suite", Area: 45, MaxGuests: 4, Price: 3_000_000},
			{RoomID: "deluxe-balcony", Name: "Deluxe Balcony", Area: 28, MaxGuests: 2, Price: 1_500_000},
		},
	}

	for i := 0; i < 2; i++ {
		err := repo.Store(ctx, yacht)
		require.NoError(t, err)

		all, err := repo.FindAll(ctx, "")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Len(t, all[0].Rooms, 2)
	}

	t.Run("free-text filter", func(t *testing.T) {
		matched, err := repo.FindAll(ctx, "five-star")
		require.NoError(t, err)
		assert.Len(t, matched, 1)

		unmatched, err := repo.FindAll(ctx, "submarine")
		require.NoError(t, err)
		assert.Empty(t, unmatched)
	})

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, "ambassador-cruise")
		require.NoError(t, err)
		assert.Equal(t, "Ambassador Cruise", got.Name)
		assert.Len(t, got.Rooms, 2)

		_, err = repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}
