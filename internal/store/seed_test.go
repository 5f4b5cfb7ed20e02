package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/empdir/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDrafts_Deterministic(t *testing.T) {
	a := SeedDrafts(DefaultSeedSize)
	b := SeedDrafts(DefaultSeedSize)
	require.Len(t, a, DefaultSeedSize)
	assert.Equal(t, a, b)

	first := a[0]
	assert.Equal(t, "Ada", first.FirstName)
	assert.Equal(t, "Lovelace", first.LastName)
	assert.Equal(t, "1982-01-01", first.DateOfBirth)
	assert.Equal(t, "2015-01-01", first.DateOfEmployment)
	assert.Equal(t, "5000000000", first.Phone)
	assert.Equal(t, "ada.lovelace0@example.com", first.Email)
}

func TestSeedDrafts_AreValid(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	emails := map[string]bool{}

	for _, d := range SeedDrafts(DefaultSeedSize) {
		assert.True(t, validators.IsDate(d.DateOfBirth), d.DateOfBirth)
		assert.True(t, validators.IsDate(d.DateOfEmployment), d.DateOfEmployment)
		assert.True(t, validators.NotFuture(d.DateOfEmployment, now), d.DateOfEmployment)
		assert.True(t, validators.Before(d.DateOfBirth, d.DateOfEmployment))
		assert.Len(t, d.Phone, validators.PhoneDigits)
		assert.True(t, validators.IsEmail(d.Email))
		assert.False(t, emails[d.Email], "duplicate %s", d.Email)
		emails[d.Email] = true
	}
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	s := newStore(t, newRepo())
	ctx := context.Background()

	calls := 0
	s.Subscribe(func() { calls++ })

	n, err := s.Seed(ctx, DefaultSeedSize)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeedSize, n)
	assert.Equal(t, 1, calls)

	list := s.List()
	require.Len(t, list, DefaultSeedSize)
	assert.Equal(t, "Katherine", list[DefaultSeedSize-len(seedFirstNames)*2].FirstName)
	assert.Equal(t, "Ada", list[DefaultSeedSize-1].FirstName, "first generated record is the oldest")

	n, err = s.Seed(ctx, DefaultSeedSize)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, s.List(), DefaultSeedSize)
}
