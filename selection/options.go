package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudx-io/endoscan/core"
)

// ErrInvalidSelection is matched by every InvalidSelectionError via errors.Is.
var ErrInvalidSelection = errors.New("invalid selection")

// InvalidSelectionError reports an answer that does not map to any menu option.
type InvalidSelectionError struct {
	Menu  string
	Input string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s selection %q", e.Menu, e.Input)
}

func (e *InvalidSelectionError) Is(target error) bool { return target == ErrInvalidSelection }

// Menu names used in InvalidSelectionError.
const (
	MenuPriceMode  = "price mode"
	MenuMaxMastery = "max mastery"
	MenuSeller     = "seller status"
)

// Option is a single numbered menu entry.
type Option[T any] struct {
	Key   string
	Label string
	Value T
}

// PriceModeOptions lists the price menu in display order.
var PriceModeOptions = []Option[core.PriceMode]{
	{Key: "1", Label: "Starting Price", Value: core.PriceModeStarting},
	{Key: "2", Label: "Buyout Price", Value: core.PriceModeBuyout},
	{Key: "3", Label: "Both", Value: core.PriceModeBoth},
}

// SellerOptions lists the seller status menu in display order.
var SellerOptions = []Option[core.SellerFilter]{
	{Key: "1", Label: "In game", Value: core.SellerInGame},
	{Key: "2", Label: "Online", Value: core.SellerOnline},
	{Key: "3", Label: "Both", Value: core.SellerBoth},
}

// lookup accepts either the numeric key or the value's name, case-insensitively.
func lookup[T ~string](options []Option[T], menu, input string) (T, error) {
	choice := strings.TrimSpace(input)
	for _, opt := range options {
		if choice == opt.Key || strings.EqualFold(choice, string(opt.Value)) {
			return opt.Value, nil
		}
	}
	var zero T
	return zero, &InvalidSelectionError{Menu: menu, Input: input}
}

// ParsePriceMode maps a price menu answer ("1", "2", "3" or "starting", "buyout", "both").
func ParsePriceMode(input string) (core.PriceMode, error) {
	return lookup(PriceModeOptions, MenuPriceMode, input)
}

// ParseSeller maps a seller menu answer ("1", "2", "3" or "ingame", "online", "both").
func ParseSeller(input string) (core.SellerFilter, error) {
	return lookup(SellerOptions, MenuSeller, input)
}

// ParseMaxMastery parses a non-negative mastery bound. An empty answer means no bound.
func ParseMaxMastery(input string) (*int, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, &InvalidSelectionError{Menu: MenuMaxMastery, Input: input}
	}
	return &n, nil
}

// FromFlags builds a filter config from non-interactive answers.
// With detailFilters off the mastery and seller answers are ignored, matching the
// price-only menu.
func FromFlags(priceMode, maxMastery, seller string, detailFilters bool) (core.FilterConfig, error) {
	mode, err := ParsePriceMode(priceMode)
	if err != nil {
		return core.FilterConfig{}, err
	}
	cfg := core.FilterConfig{PriceMode: mode}
	if !detailFilters {
		return cfg, nil
	}

	if cfg.MaxMastery, err = ParseMaxMastery(maxMastery); err != nil {
		return core.FilterConfig{}, err
	}
	if strings.TrimSpace(seller) != "" {
		if cfg.Seller, err = ParseSeller(seller); err != nil {
			return core.FilterConfig{}, err
		}
	}
	return cfg, nil
}
