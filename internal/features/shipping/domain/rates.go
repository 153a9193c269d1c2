package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrRateNotFound is returned when selecting a package or rate the store did not offer.
var ErrRateNotFound = errors.New("shipping rate not found")

// Rate is one shipping option quoted for a package.
type Rate struct {
	RateID   string `json:"rate_id"`
	Name     string `json:"name"`
	MethodID string `json:"method_id"`
	// PriceMinorUnits is the price in the currency's minor unit (cents).
	PriceMinorUnits int64 `json:"price"`
	// CurrencyMinorUnit is the number of decimals of the currency.
	CurrencyMinorUnit int  `json:"currency_minor_unit"`
	Selected          bool `json:"selected"`
}

// Price returns the rate price as a decimal amount.
func (r Rate) Price() decimal.Decimal {
	return decimal.New(r.PriceMinorUnits, -int32(r.CurrencyMinorUnit))
}

// Package groups cart items the store quotes shipping for together.
type Package struct {
	PackageID   int     `json:"package_id"`
	Name        string  `json:"name"`
	Destination Address `json:"destination"`
	Rates       []Rate  `json:"shipping_rates"`
}

// HasRates reports whether any package offers at least one rate.
func HasRates(packages []Package) bool {
	for _, p := range packages {
		if len(p.Rates) > 0 {
			return true
		}
	}
	return false
}

// NoRatesAvailable is the "store cannot ship here" condition: no packages,
// or the first package has no rates.
func NoRatesAvailable(packages []Package) bool {
	return len(packages) == 0 || len(packages[0].Rates) == 0
}

// SelectedRate returns the single selected rate across packages.
func SelectedRate(packages []Package) (Rate, bool) {
	for _, p := range packages {
		for _, r := range p.Rates {
			if r.Selected {
				return r, true
			}
		}
	}
	return Rate{}, false
}

// CountSelected returns how many rates are marked selected across packages.
func CountSelected(packages []Package) int {
	n := 0
	for _, p := range packages {
		for _, r := range p.Rates {
			if r.Selected {
				n++
			}
		}
	}
	return n
}

// WithSelection returns a copy of packages where rateID is the only selected
// rate of packageID. Other packages are untouched.
func WithSelection(packages []Package, packageID int, rateID string) ([]Package, error) {
	out := Clone(packages)

	for i := range out {
		if out[i].PackageID != packageID {
			continue
		}

		found := false
		for j := range out[i].Rates {
			if out[i].Rates[j].RateID == rateID {
				found = true
			}
		}
		if !found {
			return nil, ErrRateNotFound
		}

		for j := range out[i].Rates {
			out[i].Rates[j].Selected = out[i].Rates[j].RateID == rateID
		}
		return out, nil
	}

	return nil, ErrRateNotFound
}

// Clone deep copies packages so callers can hand them out safely.
func Clone(packages []Package) []Package {
	if packages == nil {
		return nil
	}
	out := make([]Package, len(packages))
	for i, p := range packages {
		out[i] = p
		out[i].Rates = append([]Rate(nil), p.Rates...)
	}
	return out
}
