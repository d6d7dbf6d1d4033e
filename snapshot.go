package leverage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/leverage/date"
	"github.com/google/uuid"
)

// Snapshot is the whole financial state of the user. It is immutable by
// convention: edits return a new Snapshot and leave the receiver untouched.
type Snapshot struct {
	Assets        []Asset       `json:"assets"`
	Liabilities   []Liability   `json:"liabilities"`
	IncomeExpense IncomeExpense `json:"incomeExpense"`
	LastSavedTime string        `json:"lastSavedTime,omitempty"`
	Currency      string        `json:"currency,omitempty"`
}

// CurrencyOrDefault returns the display currency.
func (s Snapshot) CurrencyOrDefault() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// clone returns a copy sharing nothing with s.
func (s Snapshot) clone() Snapshot {
	s.Assets = slices.Clone(s.Assets)
	s.Liabilities = slices.Clone(s.Liabilities)
	return s
}

// Asset returns the asset with the given id.
func (s Snapshot) Asset(id string) (Asset, bool) {
	i := slices.IndexFunc(s.Assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return Asset{}, false
	}
	return s.Assets[i], true
}

// Liability returns the liability with the given id.
func (s Snapshot) Liability(id string) (Liability, bool) {
	i := slices.IndexFunc(s.Liabilities, func(l Liability) bool { return l.ID == id })
	if i < 0 {
		return Liability{}, false
	}
	return s.Liabilities[i], true
}

// Validate returns all the inconsistencies found in s.
func (s Snapshot) Validate() error {
	var errs []error
	ids := make(map[string]bool)
	for _, a := range s.Assets {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%w: asset %q has no id", ErrInvalid, a.Name))
		}
		if ids[a.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalid, a.ID))
		}
		ids[a.ID] = true
		if a.Type == 0 {
			errs = append(errs, fmt.Errorf("%w: asset %q has no type", ErrInvalid, a.ID))
		}
	}
	for _, l := range s.Liabilities {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("%w: liability %q has no id", ErrInvalid, l.Name))
		}
		if ids[l.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalid, l.ID))
		}
		ids[l.ID] = true
		if l.Type == 0 {
			errs = append(errs, fmt.Errorf("%w: liability %q has no type", ErrInvalid, l.ID))
		}
		if l.Principal.IsNegative() {
			errs = append(errs, fmt.Errorf("%w: liability %q has a negative principal %s", ErrInvalid, l.ID, l.Principal))
		}
	}
	if s.Currency != "" {
		if err := ValidateCurrency(s.Currency); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewID returns a fresh identifier with the given prefix.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// AddAsset returns a copy of s with the asset appended. A missing id is
// generated. A positive initialLoan also creates a loan secured against the
// asset: a policy loan for an investment, a mortgage otherwise, at 3%.
func (s Snapshot) AddAsset(a Asset, initialLoan Money) (Snapshot, error) {
	if a.Name == "" {
		return s, fmt.Errorf("%w: asset name is required", ErrInvalid)
	}
	if a.Type == 0 {
		return s, fmt.Errorf("%w: asset type is required", ErrInvalid)
	}
	if initialLoan.IsNegative() {
		return s, fmt.Errorf("%w: negative loan %s", ErrInvalid, initialLoan)
	}
	if a.ID == "" {
		a.ID = NewID("a")
	}
	if _, exists := s.Asset(a.ID); exists {
		return s, fmt.Errorf("%w: duplicate asset id %q", ErrInvalid, a.ID)
	}

	n := s.clone()
	n.Assets = append(n.Assets, a)
	if initialLoan.IsPositive() {
		typ := Mortgage
		if a.Type == Investment {
			typ = Policy
		}
		n.Liabilities = append(n.Liabilities, Liability{
			ID:             NewID("l"),
			Name:           a.Name + " loan",
			Type:           typ,
			Principal:      initialLoan,
			InterestRate:   R(0.03),
			RelatedAssetID: a.ID,
		})
	}
	return n, nil
}

// AssetFields lists the field names accepted by [Snapshot.UpdateAsset].
var AssetFields = []string{"marketValue", "cost", "realizedDividend", "annualDividend", "purchaseDate", "name"}

// UpdateAsset returns a copy of s with one field of the asset 'id' set from
// its string representation.
func (s Snapshot) UpdateAsset(id, field, value string) (Snapshot, error) {
	i := slices.IndexFunc(s.Assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return s, fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	n := s.clone()
	a := &n.Assets[i]
	var err error
	switch field {
	case "marketValue":
		a.MarketValue, err = ParseMoney(value)
	case "cost":
		a.Cost, err = ParseMoney(value)
	case "realizedDividend":
		a.RealizedDividend, err = ParseMoney(value)
	case "annualDividend":
		a.AnnualDividend, err = ParseMoney(value)
	case "purchaseDate":
		a.PurchaseDate, err = date.Parse(value)
	case "name":
		a.Name = value
	default:
		return s, fmt.Errorf("%w: unknown asset field %q", ErrInvalid, field)
	}
	if err != nil {
		return s, fmt.Errorf("asset %q field %q: %w", id, field, err)
	}
	return n, nil
}

// DeleteAsset returns a copy of s without the asset and without the loans
// secured against it.
func (s Snapshot) DeleteAsset(id string) (Snapshot, error) {
	if _, ok := s.Asset(id); !ok {
		return s, fmt.Errorf("asset %q: %w", id, ErrNotFound)
	}
	n := s.clone()
	n.Assets = slices.DeleteFunc(n.Assets, func(a Asset) bool { return a.ID == id })
	n.Liabilities = slices.DeleteFunc(n.Liabilities, func(l Liability) bool { return l.RelatedAssetID == id })
	return n, nil
}

// LiabilityFields lists the field names accepted by [Snapshot.UpdateLiability].
var LiabilityFields = []string{"principal", "interestRate", "maintenanceThreshold", "liquidateThreshold", "name"}

// UpdateLiability returns a copy of s with one field of the liability 'id' set
// from its string representation.
func (s Snapshot) UpdateLiability(id, field, value string) (Snapshot, error) {
	i := slices.IndexFunc(s.Liabilities, func(l Liability) bool { return l.ID == id })
	if i < 0 {
		return s, fmt.Errorf("liability %q: %w", id, ErrNotFound)
	}
	n := s.clone()
	l := &n.Liabilities[i]
	var err error
	switch field {
	case "principal":
		l.Principal, err = ParseMoney(value)
		if err == nil && l.Principal.IsNegative() {
			err = fmt.Errorf("%w: negative principal", ErrInvalid)
		}
	case "interestRate":
		l.InterestRate, err = ParseRatio(value)
	case "maintenanceThreshold":
		l.MaintenanceThreshold, err = ParseRatio(value)
	case "liquidateThreshold":
		l.LiquidateThreshold, err = ParseRatio(value)
	case "name":
		l.Name = value
	default:
		return s, fmt.Errorf("%w: unknown liability field %q", ErrInvalid, field)
	}
	if err != nil {
		return s, fmt.Errorf("liability %q field %q: %w", id, field, err)
	}
	return n, nil
}

// UpdateIncomeExpense returns a copy of s with one income/expense field set.
func (s Snapshot) UpdateIncomeExpense(field, value string) (Snapshot, error) {
	n := s.clone()
	f := n.IncomeExpense.field(field)
	if f == nil {
		return s, fmt.Errorf("%w: unknown income/expense field %q", ErrInvalid, field)
	}
	m, err := ParseMoney(value)
	if err != nil {
		return s, fmt.Errorf("field %q: %w", field, err)
	}
	*f = m
	return n, nil
}
