package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/simaogato/carteira-backend/internal/domain"
)

// DemoOwner is the fixed owner of the sample portfolio
var DemoOwner = uuid.MustParse("00000000-0000-0000-0000-00000000d3e0")

// Ledger is the subset of the ledger service the seeder writes through
type Ledger interface {
	ListAssets(ctx context.Context, ownerID uuid.UUID, filter domain.AssetFilter) ([]*domain.Asset, error)
	CreateAsset(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	RecordOperation(ctx context.Context, ownerID uuid.UUID, op *domain.Operation) (*domain.Operation, error)
}

// DemoAsset defines one holding of the sample portfolio
type DemoAsset struct {
	Name           string
	Class          domain.AssetClass
	Subclass       domain.AssetSubclass
	Custodian      string
	InceptionValue int64
}

// DemoAssets is the sample portfolio
var DemoAssets = []DemoAsset{
	{"Tesouro IPCA+", domain.AssetClassFixedIncome, domain.AssetSubclassTesouroDireto, "Banco do Brasil", 1000},
	{"Ações Petrobras", domain.AssetClassVariableIncome, domain.AssetSubclassStock, "XP Investimentos", 5000},
	{"Criptomoeda Bitcoin", domain.AssetClassVariableIncome, domain.AssetSubclassCrypto, "Binance", 30000},
	{"Fundo Imobiliário XPML11", domain.AssetClassVariableIncome, domain.AssetSubclassFII, "Rico", 1500},
	{"CDB Banco Inter", domain.AssetClassFixedIncome, domain.AssetSubclassCDB, "Banco Inter", 5000},
	{"Ações Vale", domain.AssetClassVariableIncome, domain.AssetSubclassStock, "Clear", 7000},
	{"Criptomoeda Ethereum", domain.AssetClassVariableIncome, domain.AssetSubclassCrypto, "Binance", 1500},
	{"Fundo Multimercado XP", domain.AssetClassVariableIncome, domain.AssetSubclassMultimarketFund, "XP Investimentos", 4000},
	{"Tesouro Selic", domain.AssetClassFixedIncome, domain.AssetSubclassTesouroDireto, "Banco do Brasil", 2000},
	{"FII HGLG11", domain.AssetClassVariableIncome, domain.AssetSubclassFII, "BTG Pactual", 2500},
}

// DemoSeeder creates the sample portfolio of an owner
type DemoSeeder struct {
	ledger Ledger
	owner  uuid.UUID
	seed   int64
	first  domain.Month
	last   domain.Month
	log    zerolog.Logger
}

// NewDemoSeeder creates a new DemoSeeder for the owner.
// The generated history runs from 2023-01 through 2025-02.
func NewDemoSeeder(ledger Ledger, owner uuid.UUID, log zerolog.Logger) *DemoSeeder {
	if owner == uuid.Nil {
		owner = DemoOwner
	}
	return &DemoSeeder{
		ledger: ledger,
		owner:  owner,
		seed:   2023,
		first:  domain.NewMonth(2023, time.January),
		last:   domain.NewMonth(2025, time.February),
		log:    log.With().Str("component", "demo_seeder").Logger(),
	}
}

// Seed creates the sample portfolio unless the owner already has assets.
// Returns the number of assets created.
// Logic:
//  1. Every asset is acquired on a day of the first month
//  2. Each month end gets a revaluation: fixed income grows 0.2% to 0.5%,
//     variable income moves between -5% and +7%
//  3. 30% of months add a buy and 20% a sell, sized from the inception value
//
// The random source is seeded, so the same portfolio is produced on every run.
func (s *DemoSeeder) Seed(ctx context.Context) (int, error) {
	existing, err := s.ledger.ListAssets(ctx, s.owner, domain.AssetFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list existing assets: %w", err)
	}
	if len(existing) > 0 {
		s.log.Debug().Int("assets", len(existing)).Msg("owner already has assets, skipping demo seed")
		return 0, nil
	}

	rng := rand.New(rand.NewSource(s.seed))

	for _, demo := range DemoAssets {
		inception := s.first.Time().AddDate(0, 0, rng.Intn(28))

		asset, err := s.ledger.CreateAsset(ctx, &domain.Asset{
			OwnerID:        s.owner,
			Name:           demo.Name,
			Class:          demo.Class,
			Subclass:       demo.Subclass,
			Custodian:      demo.Custodian,
			InceptionValue: decimal.NewFromInt(demo.InceptionValue),
			InceptionDate:  inception,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to seed asset %s: %w", demo.Name, err)
		}

		if err := s.seedOperations(ctx, rng, asset, demo); err != nil {
			return 0, err
		}
	}

	s.log.Info().
		Str("owner_id", s.owner.String()).
		Int("assets", len(DemoAssets)).
		Msg("demo portfolio seeded")

	return len(DemoAssets), nil
}

func (s *DemoSeeder) seedOperations(ctx context.Context, rng *rand.Rand, asset *domain.Asset, demo DemoAsset) error {
	value := asset.InceptionValue
	base := asset.InceptionValue

	record := func(kind domain.OperationKind, amount decimal.Decimal, date time.Time) error {
		_, err := s.ledger.RecordOperation(ctx, s.owner, &domain.Operation{
			AssetID: asset.ID,
			Kind:    kind,
			Amount:  amount,
			Date:    date,
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s for %s: %w", kind, demo.Name, err)
		}
		return nil
	}

	for m := s.first; !m.After(s.last); m = m.AddMonths(1) {
		date := m.LastDay()

		value = value.Mul(decimal.NewFromFloat(1 + monthlyMove(rng, demo.Class))).Round(2)
		if err := record(domain.OperationKindRevaluation, value, date); err != nil {
			return err
		}

		if rng.Float64() < 0.3 {
			buy := base.Mul(decimal.NewFromFloat(0.5 + rng.Float64())).Round(2)
			if err := record(domain.OperationKindBuy, buy, date); err != nil {
				return err
			}
			value = value.Add(buy)
		}

		if rng.Float64() < 0.2 {
			sell := base.Mul(decimal.NewFromFloat(0.5 + 0.7*rng.Float64())).Round(2)
			// Never sell more than half of what is held
			if limit := value.Div(decimal.NewFromInt(2)).Round(2); sell.GreaterThan(limit) {
				sell = limit
			}
			if sell.IsPositive() {
				if err := record(domain.OperationKindSell, sell, date); err != nil {
					return err
				}
				value = value.Sub(sell)
			}
		}
	}

	return nil
}

func monthlyMove(rng *rand.Rand, class domain.AssetClass) float64 {
	if class == domain.AssetClassFixedIncome {
		return 0.002 + rng.Float64()*0.003
	}
	return -0.05 + rng.Float64()*0.12
}
