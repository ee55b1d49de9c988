package service

import (
	"regexp"
	"testing"

	"github.com/ravi-64bit/streetwise/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []model.MenuItem {
	return []model.MenuItem{
		{ID: "item-a", VendorID: "vendor-1", Name: "Masala Dosa", Price: decimal.NewFromInt(5)},
		{ID: "item-b", VendorID: "vendor-1", Name: "Filter Coffee", Price: decimal.NewFromInt(3)},
	}
}

func TestValidateSelection(t *testing.T) {
	assert.ErrorIs(t, ValidateSelection("", map[string]any{"item-a": 1}), ErrMissingData)
	assert.ErrorIs(t, ValidateSelection("vendor-1", nil), ErrMissingData)
	assert.ErrorIs(t, ValidateSelection("vendor-1", map[string]any{}), ErrMissingData)
	assert.NoError(t, ValidateSelection("vendor-1", map[string]any{"item-a": 1}))
}

func TestBuildOrderLinesDropsInvalidQuantities(t *testing.T) {
	lines, total, err := BuildOrderLines(catalogFixture(), map[string]any{
		"item-a": float64(2), // JSON numbers decode as float64
		"item-b": "abc",
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "item-a", lines[0].MenuItemID)
	assert.Equal(t, "Masala Dosa", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(5)))
	assert.True(t, total.Equal(decimal.NewFromInt(10)), "total was %s", total)
}

func TestBuildOrderLinesQuantityCoercion(t *testing.T) {
	cases := []struct {
		name string
		qty  any
		keep bool
	}{
		{"string number", "3", true},
		{"string with spaces", " 2 ", true},
		{"int", 4, true},
		{"whole float", float64(1), true},
		{"fractional float", 2.5, false},
		{"zero", 0, false},
		{"negative", -1, false},
		{"negative string", "-2", false},
		{"garbage string", "abc", false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, _, err := BuildOrderLines(catalogFixture(), map[string]any{
				"item-a": tc.qty,
				"item-b": 1, // keeps the order non-empty
			})
			require.NoError(t, err)
			found := false
			for _, l := range lines {
				if l.MenuItemID == "item-a" {
					found = true
				}
			}
			assert.Equal(t, tc.keep, found)
		})
	}
}

func TestBuildOrderLinesUnknownItemDropped(t *testing.T) {
	lines, total, err := BuildOrderLines(catalogFixture(), map[string]any{
		"item-a":    1,
		"not-there": 5,
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, total.Equal(decimal.NewFromInt(5)))
}

func TestBuildOrderLinesNoValidItems(t *testing.T) {
	_, _, err := BuildOrderLines(catalogFixture(), map[string]any{
		"item-a": "abc",
		"item-b": 0,
	})
	assert.ErrorIs(t, err, ErrNoValidItems)

	_, _, err = BuildOrderLines(catalogFixture(), map[string]any{"not-there": 2})
	assert.ErrorIs(t, err, ErrNoValidItems)
}

func TestBuildOrderLinesSnapshotsPrices(t *testing.T) {
	catalog := catalogFixture()
	lines, total, err := BuildOrderLines(catalog, map[string]any{"item-a": 2})
	require.NoError(t, err)

	// A later menu edit must not touch an already-built order.
	catalog[0].Price = decimal.NewFromInt(50)
	catalog[0].Name = "Renamed"

	assert.Equal(t, "Masala Dosa", lines[0].Name)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(5)))
	assert.True(t, total.Equal(decimal.NewFromInt(10)))
}

func TestNewOrderCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ODR-[A-Za-z0-9]{4}-\d{4}$`)
	vendorID := "0b0e4f7a-9c1d-4e2f-8a3b-1c2d3e4f5a6b"

	for i := 0; i < 100; i++ {
		code := pattern.FindString(NewOrderCode(vendorID))
		require.NotEmpty(t, code)
		assert.Equal(t, "ODR-5a6b-", code[:9])
	}
}

func TestNewOrderCodeShortVendorID(t *testing.T) {
	// Vendor ids are uuids in practice; short ids must still mint a code.
	code := NewOrderCode("ab12")
	assert.Regexp(t, `^ODR-ab12-\d{4}$`, code)
}
