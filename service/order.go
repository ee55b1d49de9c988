package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ravi-64bit/streetwise/model"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingData  = errors.New("vendor and item selection are required")
	ErrNoValidItems = errors.New("no valid items selected")
)

// ValidateSelection rejects a submission before any catalog lookup happens.
func ValidateSelection(vendorID string, quantities map[string]any) error {
	if vendorID == "" || len(quantities) == 0 {
		return ErrMissingData
	}
	return nil
}

// BuildOrderLines resolves a raw quantity selection against the vendor's
// catalog. Lines with an unknown item id, an unparseable quantity or a
// quantity <= 0 are dropped silently; prices always come from the catalog,
// never from client input. Returns ErrNoValidItems when nothing survives.
func BuildOrderLines(catalog []model.MenuItem, quantities map[string]any) ([]model.OrderItem, decimal.Decimal, error) {
	var lines []model.OrderItem
	total := decimal.Zero
	for _, item := range catalog {
		raw, ok := quantities[item.ID]
		if !ok {
			continue
		}
		qty, ok := parseQuantity(raw)
		if !ok || qty <= 0 {
			continue
		}
		line := model.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   qty,
		}
		lines = append(lines, line)
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	if len(lines) == 0 {
		return nil, decimal.Zero, ErrNoValidItems
	}
	return lines, total, nil
}

// parseQuantity coerces a submitted quantity to an integer. JSON numbers
// arrive as float64, form values as strings.
func parseQuantity(v any) (int, bool) {
	switch q := v.(type) {
	case int:
		return q, true
	case int64:
		return int(q), true
	case float64:
		if q != math.Trunc(q) {
			return 0, false
		}
		return int(q), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// NewOrderCode mints a human-readable order code of the form
// ODR-<last 4 of vendor id>-<4 digit suffix>. Uniqueness is enforced by the
// caller with a retry against the order store.
func NewOrderCode(vendorID string) string {
	suffix := vendorID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("ODR-%s-%d", suffix, 1000+rand.Intn(9000))
}
