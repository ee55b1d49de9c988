package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlateNumbering(t *testing.T) {
	store := NewPlateStore(time.Hour)

	p1 := store.Open("sess")
	p2 := store.Open("sess")
	p3 := store.Open("sess")
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 2, p2.Number)
	assert.Equal(t, 3, p3.Number)

	// Numbering continues past the highest open plate even after a close.
	store.Close("sess", p2.ID)
	p4 := store.Open("sess")
	assert.Equal(t, 4, p4.Number)

	// An emptied session starts over at 1.
	for _, p := range store.List("sess") {
		store.Close("sess", p.ID)
	}
	assert.Equal(t, 1, store.Open("sess").Number)
}

func TestPlateAddItemAndTotal(t *testing.T) {
	store := NewPlateStore(time.Hour)
	p := store.Open("sess")

	p, err := store.AddItem("sess", p.ID, PlateItem{Name: "Vada Pav", Price: decimal.NewFromInt(2)})
	require.NoError(t, err)
	p, err = store.AddItem("sess", p.ID, PlateItem{Name: "Chai", Price: decimal.RequireFromString("1.50")})
	require.NoError(t, err)

	require.Len(t, p.Items, 2)
	assert.True(t, p.Total().Equal(decimal.RequireFromString("3.50")), "total was %s", p.Total())
}

func TestPlateAddItemUnknownPlate(t *testing.T) {
	store := NewPlateStore(time.Hour)
	_, err := store.AddItem("sess", "nope", PlateItem{Name: "Chai", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrPlateNotFound)
}

func TestPlateCloseIsIdempotent(t *testing.T) {
	store := NewPlateStore(time.Hour)
	p := store.Open("sess")
	require.Len(t, store.List("sess"), 1)

	store.Close("sess", p.ID)
	assert.Empty(t, store.List("sess"))

	// Closing again, or closing something that never existed, is a no-op.
	store.Close("sess", p.ID)
	store.Close("sess", "never-existed")
	assert.Empty(t, store.List("sess"))
}

func TestPlateSessionsAreIsolated(t *testing.T) {
	store := NewPlateStore(time.Hour)
	a := store.Open("session-a")
	b1 := store.Open("session-b")
	b2 := store.Open("session-b")

	assert.Equal(t, 1, a.Number)
	assert.Equal(t, 1, b1.Number)
	assert.Equal(t, 2, b2.Number)
	require.Len(t, store.List("session-a"), 1)
	require.Len(t, store.List("session-b"), 2)

	store.Close("session-b", a.ID) // wrong session, must not remove a's plate
	assert.Len(t, store.List("session-a"), 1)
}

func TestPlateSessionPrunedAfterIdleTTL(t *testing.T) {
	store := NewPlateStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	store.Open("stale")
	require.Len(t, store.List("stale"), 1)

	now = now.Add(2 * time.Hour)
	store.Open("fresh") // touching another session prunes the stale one

	assert.Empty(t, store.List("stale"))
}

func TestPlateEndSession(t *testing.T) {
	store := NewPlateStore(time.Hour)
	store.Open("sess")
	store.Open("sess")

	store.EndSession("sess")
	assert.Empty(t, store.List("sess"))
	assert.Equal(t, 1, store.Open("sess").Number)
}

func TestPlateReturnedCopiesAreDetached(t *testing.T) {
	store := NewPlateStore(time.Hour)
	p := store.Open("sess")
	p, err := store.AddItem("sess", p.ID, PlateItem{Name: "Chai", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)

	p.Items[0].Name = "mutated"

	fresh := store.List("sess")
	require.Len(t, fresh, 1)
	assert.Equal(t, "Chai", fresh[0].Items[0].Name)
}
