package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_Calculable(t *testing.T) {
	full := Address{Address1: "Av. Corrientes 1234", City: "CABA", StateCode: "C", PostalCode: "1043"}
	assert.True(t, full.Calculable())

	tests := map[string]func(a *Address){
		"missing address1":   func(a *Address) { a.Address1 = "" },
		"missing city":       func(a *Address) { a.City = "  " },
		"missing state":      func(a *Address) { a.StateCode = "" },
		"missing postalcode": func(a *Address) { a.PostalCode = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			a := full
			mutate(&a)
			assert.False(t, a.Calculable())
		})
	}
}

func TestAddress_Normalize(t *testing.T) {
	a := Address{FirstName: " Ana ", Country: ""}.Normalize()
	assert.Equal(t, "Ana", a.FirstName)
	assert.Equal(t, DefaultCountry, a.Country)
}

func TestAddress_Complete(t *testing.T) {
	a := Address{Address1: "x", City: "y", StateCode: "B", PostalCode: "1900"}
	assert.False(t, a.Complete())
	assert.ElementsMatch(t, []string{"first_name", "last_name", "email", "phone"}, a.MissingContact())

	a.FirstName, a.LastName, a.Email, a.Phone = "Ana", "Paz", "ana@example.com", "221"
	assert.True(t, a.Complete())
}

func testPackages() []Package {
	return []Package{{
		PackageID: 0,
		Rates: []Rate{
			{RateID: "flat", PriceMinorUnits: 500, CurrencyMinorUnit: 2},
			{RateID: "express", PriceMinorUnits: 1200, CurrencyMinorUnit: 2},
		},
	}}
}

func TestWithSelection(t *testing.T) {
	packages := testPackages()

	selected, err := WithSelection(packages, 0, "express")
	require.NoError(t, err)

	assert.Equal(t, 1, CountSelected(selected))
	rate, ok := SelectedRate(selected)
	require.True(t, ok)
	assert.Equal(t, "express", rate.RateID)
	assert.Equal(t, "12", rate.Price().String())

	assert.Equal(t, 0, CountSelected(packages), "input must not be mutated")

	reselected, err := WithSelection(selected, 0, "flat")
	require.NoError(t, err)
	assert.Equal(t, 1, CountSelected(reselected))

	_, err = WithSelection(packages, 0, "pigeon")
	assert.ErrorIs(t, err, ErrRateNotFound)
	_, err = WithSelection(packages, 3, "flat")
	assert.ErrorIs(t, err, ErrRateNotFound)
}

func TestNoRatesAvailable(t *testing.T) {
	assert.True(t, NoRatesAvailable(nil))
	assert.True(t, NoRatesAvailable([]Package{{PackageID: 0}}))
	assert.False(t, NoRatesAvailable(testPackages()))
	assert.False(t, HasRates([]Package{{PackageID: 0}}))
	assert.True(t, HasRates(testPackages()))
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, StateUncalculated.Terminal())
	assert.False(t, StateCalculating.Terminal())
	assert.True(t, StateRatesAvailable.Terminal())
	assert.True(t, StateNoRatesAvailable.Terminal())
	assert.True(t, StateError.Terminal())
}

func TestState_Quoted(t *testing.T) {
	assert.False(t, StateUncalculated.Quoted())
	assert.False(t, StateCalculating.Quoted())
	assert.False(t, StateError.Quoted())
	assert.True(t, StateRatesAvailable.Quoted())
	assert.True(t, StateNoRatesAvailable.Quoted())
}
