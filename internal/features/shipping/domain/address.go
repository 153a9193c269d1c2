package domain

import "strings"

// DefaultCountry is the only country the store ships to.
const DefaultCountry = "AR"

// Address is the shopper's billing/shipping address as entered on checkout.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	// StateCode is the province code, e.g. "B" for Buenos Aires.
	StateCode  string `json:"state"`
	PostalCode string `json:"postcode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// Normalize trims every field and applies the default country.
func (a Address) Normalize() Address {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Address1 = strings.TrimSpace(a.Address1)
	a.City = strings.TrimSpace(a.City)
	a.StateCode = strings.TrimSpace(a.StateCode)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.ToUpper(strings.TrimSpace(a.Country))
	a.Phone = strings.TrimSpace(a.Phone)
	a.Email = strings.TrimSpace(a.Email)
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return a
}

// Calculable reports whether the address has enough data for the store to quote shipping.
func (a Address) Calculable() bool {
	a = a.Normalize()
	return a.Address1 != "" && a.StateCode != "" && a.City != "" && a.PostalCode != ""
}

// MissingContact lists the contact fields an order needs on top of a calculable address.
func (a Address) MissingContact() []string {
	a = a.Normalize()

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"first_name", a.FirstName},
		{"last_name", a.LastName},
		{"email", a.Email},
		{"phone", a.Phone},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Complete reports whether the address is good enough to place an order with.
func (a Address) Complete() bool {
	return a.Calculable() && len(a.MissingContact()) == 0
}
