package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetClass represents the broad class of an asset
type AssetClass string

const (
	AssetClassFixedIncome    AssetClass = "FIXED_INCOME"
	AssetClassVariableIncome AssetClass = "VARIABLE_INCOME"
)

// AssetSubclass refines an AssetClass
type AssetSubclass string

const (
	AssetSubclassCDB             AssetSubclass = "CDB"
	AssetSubclassTesouroDireto   AssetSubclass = "TESOURO_DIRETO"
	AssetSubclassFixedIncomeFund AssetSubclass = "FIXED_INCOME_FUND"
	AssetSubclassStock           AssetSubclass = "STOCK"
	AssetSubclassEquityFund      AssetSubclass = "EQUITY_FUND"
	AssetSubclassMultimarketFund AssetSubclass = "MULTIMARKET_FUND"
	AssetSubclassFII             AssetSubclass = "FII"
	AssetSubclassCrypto          AssetSubclass = "CRYPTO"
	AssetSubclassForeignFund     AssetSubclass = "FOREIGN_FUND"
)

// SubclassesByClass lists the subclasses allowed for each class
var SubclassesByClass = map[AssetClass][]AssetSubclass{
	AssetClassFixedIncome: {
		AssetSubclassCDB,
		AssetSubclassTesouroDireto,
		AssetSubclassFixedIncomeFund,
	},
	AssetClassVariableIncome: {
		AssetSubclassStock,
		AssetSubclassEquityFund,
		AssetSubclassMultimarketFund,
		AssetSubclassFII,
		AssetSubclassCrypto,
		AssetSubclassForeignFund,
	},
}

// Asset represents a tracked investment holding.
// Class, Subclass and Custodian only matter for display and filtering; the valuation
// engine needs nothing but the inception value and date.
type Asset struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Class          AssetClass
	Subclass       AssetSubclass
	Custodian      string          // Bank or broker holding the asset
	InceptionValue decimal.Decimal // Value at acquisition
	InceptionDate  time.Time       // Day is irrelevant for the monthly series
	Notes          string
	CreatedAt      time.Time
}

// InceptionMonth returns the first month of the asset's series
func (a *Asset) InceptionMonth() Month {
	return MonthOf(a.InceptionDate)
}

// Validate ensures the asset adheres to domain rules
// Returns a *ValidationError if validation fails
func (a *Asset) Validate() error {
	if a.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "asset must belong to an owner")
	}

	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "asset name cannot be empty")
	}

	subclasses, ok := SubclassesByClass[a.Class]
	if !ok {
		return NewValidationError("class", "asset class must be FIXED_INCOME or VARIABLE_INCOME")
	}

	if !containsSubclass(subclasses, a.Subclass) {
		return NewValidationError("subclass", "subclass %s does not belong to class %s", a.Subclass, a.Class)
	}

	if a.InceptionValue.IsNegative() {
		return NewValidationError("inception_value", "inception value cannot be negative")
	}

	if a.InceptionDate.IsZero() {
		return NewValidationError("inception_date", "inception date is required")
	}

	return nil
}

func containsSubclass(list []AssetSubclass, s AssetSubclass) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

// AssetFilter restricts asset listings. Empty fields do not filter.
// Matching is a case-insensitive substring match.
type AssetFilter struct {
	Name      string
	Class     string
	Subclass  string
	Custodian string
}

// IsEmpty reports whether the filter matches every asset
func (f AssetFilter) IsEmpty() bool {
	return f.Name == "" && f.Class == "" && f.Subclass == "" && f.Custodian == ""
}

// Matches reports whether the asset satisfies every non-empty field of the filter
func (f AssetFilter) Matches(a *Asset) bool {
	return containsFold(a.Name, f.Name) &&
		containsFold(string(a.Class), f.Class) &&
		containsFold(string(a.Subclass), f.Subclass) &&
		containsFold(a.Custodian, f.Custodian)
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// GroupKey selects the classification used by composition breakdowns
type GroupKey string

const (
	GroupByClass     GroupKey = "CLASS"
	GroupBySubclass  GroupKey = "SUBCLASS"
	GroupByCustodian GroupKey = "CUSTODIAN"
)

// KeyOf returns the asset's classification value for the given group key
func (a *Asset) KeyOf(key GroupKey) (string, bool) {
	switch key {
	case GroupByClass:
		return string(a.Class), true
	case GroupBySubclass:
		return string(a.Subclass), true
	case GroupByCustodian:
		return a.Custodian, true
	default:
		return "", false
	}
}
