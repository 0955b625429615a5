package models

// PaymentMethod represents a tokenized card summary stored by the remote
// payment-method service. It never carries a full card number or CVV.
type PaymentMethod struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userId"`
	CardType     string `json:"cardType"`
	Last4        string `json:"last4"`
	ExpMonth     int    `json:"expMonth"`
	ExpYear      int    `json:"expYear"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Street       string `json:"street"`
	HouseNumber  string `json:"houseNumber"`
	AddressExtra string `json:"addressExtra"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// CreatePaymentMethodRequest is the payload for saving a new payment method
type CreatePaymentMethodRequest struct {
	CardType     string `json:"cardType"`
	Last4        string `json:"last4"`
	ExpMonth     int    `json:"expMonth"`
	ExpYear      int    `json:"expYear"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Street       string `json:"street"`
	HouseNumber  string `json:"houseNumber"`
	AddressExtra string `json:"addressExtra"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// UpdatePaymentMethodRequest is a partial update; nil fields are untouched
type UpdatePaymentMethodRequest struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Street       *string `json:"street,omitempty"`
	HouseNumber  *string `json:"houseNumber,omitempty"`
	AddressExtra *string `json:"addressExtra,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// PrefillForm populates a checkout form from a saved payment method. The
// card number stays blank: the saved record only ever holds the last four
// digits, so a saved card never re-enters the validation path as a PAN.
func (m *PaymentMethod) PrefillForm() CardForm {
	return CardForm{
		CardType:     m.CardType,
		ExpMonth:     m.ExpMonth,
		ExpYear:      m.ExpYear,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Street:       m.Street,
		HouseNumber:  m.HouseNumber,
		AddressExtra: m.AddressExtra,
		PostalCode:   m.PostalCode,
		City:         m.City,
		Country:      m.Country,
		Phone:        m.Phone,
	}
}
