package leverage

import "fmt"

// AssetType classifies an asset. Only investments are hit by a market crash.
type AssetType int

const (
	// Investment is a market-priced asset: stocks, ETFs, investment policies.
	Investment AssetType = iota + 1
	// RealEstate is a property, valued by estimation.
	RealEstate
	// Cash is a deposit or a money market reserve.
	Cash
)

func (t AssetType) String() string {
	switch t {
	case Investment:
		return "investment"
	case RealEstate:
		return "real_estate"
	case Cash:
		return "cash"
	default:
		return "unknown"
	}
}

// ParseAssetType parses a string into an AssetType.
func ParseAssetType(s string) (AssetType, error) {
	switch s {
	case "investment":
		return Investment, nil
	case "real_estate", "realestate":
		return RealEstate, nil
	case "cash":
		return Cash, nil
	default:
		return 0, fmt.Errorf("%w: unknown asset type %q", ErrInvalid, s)
	}
}

func (t AssetType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *AssetType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseAssetType(string(b))
	return err
}

// LiabilityType classifies a loan.
type LiabilityType int

const (
	// Policy is a loan against the cash value of an insurance policy.
	Policy LiabilityType = iota + 1
	// Pledge is a stock-pledge loan, monitored with a collateral ratio.
	Pledge
	// Mortgage is a bank loan repaid with a fixed monthly payment.
	Mortgage
	// Credit is an unsecured bank loan repaid with a fixed monthly payment.
	Credit
)

func (t LiabilityType) String() string {
	switch t {
	case Policy:
		return "policy"
	case Pledge:
		return "pledge"
	case Mortgage:
		return "mortgage"
	case Credit:
		return "credit"
	default:
		return "unknown"
	}
}

// ParseLiabilityType parses a string into a LiabilityType.
func ParseLiabilityType(s string) (LiabilityType, error) {
	switch s {
	case "policy":
		return Policy, nil
	case "pledge":
		return Pledge, nil
	case "mortgage":
		return Mortgage, nil
	case "credit":
		return Credit, nil
	default:
		return 0, fmt.Errorf("%w: unknown liability type %q", ErrInvalid, s)
	}
}

func (t LiabilityType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *LiabilityType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseLiabilityType(string(b))
	return err
}

// AssetBacked reports whether the loan's interest is paid on top of any fixed
// monthly payment. Mortgage and credit payments already include base interest.
func (t LiabilityType) AssetBacked() bool { return t == Policy || t == Pledge }

// Convention returns how a position secured by this kind of loan is monitored.
func (t LiabilityType) Convention() Convention {
	if t == Pledge {
		return Collateral
	}
	return LoanToValue
}

// Convention is the way a leveraged position's ratio is expressed.
type Convention int

const (
	// LoanToValue monitors principal/value, lower is safer.
	LoanToValue Convention = iota
	// Collateral monitors value/principal, higher is safer.
	Collateral
)

func (c Convention) String() string {
	switch c {
	case LoanToValue:
		return "loan-to-value"
	case Collateral:
		return "collateral"
	default:
		return "unknown"
	}
}

func (c Convention) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Status is the discrete risk level of a leveraged position.
type Status int

const (
	Safe Status = iota
	// Warning is within 10 points of the maintenance threshold.
	Warning
	// TopUp means the maintenance threshold is crossed: a margin call.
	TopUp
	// Danger means the liquidation threshold is crossed.
	Danger
)

func (s Status) String() string {
	switch s {
	case Safe:
		return "safe"
	case Warning:
		return "warning"
	case TopUp:
		return "topup"
	case Danger:
		return "danger"
	default:
		return "unknown"
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "safe":
		return Safe, nil
	case "warning":
		return Warning, nil
	case "topup":
		return TopUp, nil
	case "danger":
		return Danger, nil
	default:
		return 0, fmt.Errorf("%w: unknown status %q", ErrInvalid, s)
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) (err error) {
	*s, err = ParseStatus(string(b))
	return err
}

// CashFlowStatus tells whether the month ends with money left.
type CashFlowStatus int

const (
	Surplus CashFlowStatus = iota
	Deficit
)

func (s CashFlowStatus) String() string {
	if s == Deficit {
		return "deficit"
	}
	return "surplus"
}

func (s CashFlowStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
