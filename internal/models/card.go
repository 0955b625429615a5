package models

import (
	"regexp"
	"strings"
	"time"
)

// CardForm holds the payment and billing fields collected at checkout.
// It is validated locally before submission and never persisted as-is:
// only the derived summary (type, last4, expiry) may be stored.
type CardForm struct {
	CardType     string `json:"cardType"`
	CardNumber   string `json:"cardNumber"`
	ExpMonth     int    `json:"expMonth"`
	ExpYear      int    `json:"expYear"`
	CVV          string `json:"cvv"`
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

var (
	cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3,4}$`)
)

// cardTypes lists the accepted card brands
var cardTypes = map[string]bool{
	"visa":       true,
	"mastercard": true,
	"amex":       true,
	"discover":   true,
}

// NewCardForm returns a blank form with defaults, used when the visitor
// switches the payment selector back to "new card".
func NewCardForm() CardForm {
	return CardForm{CardType: "visa", Country: "CH"}
}

// Validate validates the full form and returns field-level errors keyed by
// field name. An empty map means the form is valid.
func (f *CardForm) Validate() map[string][]string {
	return f.validate(time.Now())
}

func (f *CardForm) validate(now time.Time) map[string][]string {
	errs := make(map[string][]string)

	if !cardTypes[f.CardType] {
		errs["cardType"] = append(errs["cardType"], "unknown card type")
	}

	number := strings.ReplaceAll(f.CardNumber, " ", "")
	if number == "" {
		errs["cardNumber"] = append(errs["cardNumber"], "card number is required")
	} else if !cardDigitsRegex.MatchString(number) {
		errs["cardNumber"] = append(errs["cardNumber"], "card number must be 13-19 digits")
	} else if !luhnValid(number) {
		errs["cardNumber"] = append(errs["cardNumber"], "card number failed checksum")
	}

	if f.ExpMonth < 1 || f.ExpMonth > 12 {
		errs["expMonth"] = append(errs["expMonth"], "expiry month must be between 1 and 12")
	} else if cardExpired(f.ExpYear, f.ExpMonth, now) {
		errs["expiry"] = append(errs["expiry"], "card is expired")
	}

	if f.CVV == "" {
		errs["cvv"] = append(errs["cvv"], "cvv is required")
	} else if !cvvRegex.MatchString(f.CVV) {
		errs["cvv"] = append(errs["cvv"], "cvv must be 3-4 digits")
	}

	required := map[string]string{
		"firstName":   f.FirstName,
		"lastName":    f.LastName,
		"street":      f.Street,
		"houseNumber": f.HouseNumber,
		"postalCode":  f.PostalCode,
		"city":        f.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = append(errs[field], field+" is required")
		}
	}
	// addressExtra and phone are optional

	return errs
}

// ValidateField re-validates a single field as it changes, for incremental
// feedback. Unknown field names validate clean.
func (f *CardForm) ValidateField(name string) []string {
	return f.validate(time.Now())[name]
}

// luhnValid runs the standard mod-10 checksum over a digit string
func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if digit < 0 || digit > 9 {
			return false
		}
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// cardExpired reports whether (year, month) is strictly before the current
// month. A card expiring this month is still valid.
func cardExpired(year, month int, now time.Time) bool {
	if year < now.Year() {
		return true
	}
	if year == now.Year() && month < int(now.Month()) {
		return true
	}
	return false
}

// Last4 returns the last four digits of the card number
func (f *CardForm) Last4() string {
	number := strings.ReplaceAll(f.CardNumber, " ", "")
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}

// Summary derives the storable payment method record from a validated form.
// The full card number and CVV are deliberately dropped.
func (f *CardForm) Summary() CreatePaymentMethodRequest {
	return CreatePaymentMethodRequest{
		CardType:     f.CardType,
		Last4:        f.Last4(),
		ExpMonth:     f.ExpMonth,
		ExpYear:      f.ExpYear,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		Street:       f.Street,
		HouseNumber:  f.HouseNumber,
		AddressExtra: f.AddressExtra,
		PostalCode:   f.PostalCode,
		City:         f.City,
		Country:      f.Country,
		Phone:        f.Phone,
	}
}
