package domain

// State is the shipping quote lifecycle of one checkout session.
type State string

const (
	// StateUncalculated means no calculable address has been submitted yet.
	StateUncalculated State = "UNCALCULATED"
	// StateCalculating means a quote is scheduled or in flight.
	StateCalculating State = "CALCULATING"
	// StateRatesAvailable means the store offered at least one rate.
	StateRatesAvailable State = "RATES_AVAILABLE"
	// StateNoRatesAvailable means the store does not ship to the address.
	StateNoRatesAvailable State = "NO_RATES_AVAILABLE"
	// StateError means the last quote failed.
	StateError State = "ERROR"
)

// Terminal reports whether the state is the outcome of a finished quote.
func (s State) Terminal() bool {
	return s == StateRatesAvailable || s == StateNoRatesAvailable || s == StateError
}

// Quoted reports whether the store answered for the current address, with or
// without rates. Orders may only be placed from a quoted state.
func (s State) Quoted() bool {
	return s == StateRatesAvailable || s == StateNoRatesAvailable
}
