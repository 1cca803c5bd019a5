package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Validate(t *testing.T) {
	assetID := uuid.New()
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		op      Operation
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Buy with positive amount should pass",
			op:      Operation{AssetID: assetID, Kind: OperationKindBuy, Amount: decimal.NewFromInt(100), Date: date},
			wantErr: false,
		},
		{
			name:    "Sell with zero amount should fail",
			op:      Operation{AssetID: assetID, Kind: OperationKindSell, Amount: decimal.Zero, Date: date},
			wantErr: true,
			errMsg:  "invalid amount: SELL amount must be positive",
		},
		{
			name:    "Buy with negative amount should fail",
			op:      Operation{AssetID: assetID, Kind: OperationKindBuy, Amount: decimal.NewFromInt(-5), Date: date},
			wantErr: true,
			errMsg:  "invalid amount: BUY amount must be positive",
		},
		{
			name:    "Revaluation to zero should pass",
			op:      Operation{AssetID: assetID, Kind: OperationKindRevaluation, Amount: decimal.Zero, Date: date},
			wantErr: false,
		},
		{
			name:    "Negative revaluation should fail",
			op:      Operation{AssetID: assetID, Kind: OperationKindRevaluation, Amount: decimal.NewFromInt(-1), Date: date},
			wantErr: true,
			errMsg:  "invalid amount: revaluation amount cannot be negative",
		},
		{
			name:    "Unknown kind should fail",
			op:      Operation{AssetID: assetID, Kind: "DIVIDEND", Amount: decimal.NewFromInt(1), Date: date},
			wantErr: true,
			errMsg:  "invalid kind: operation kind must be REVALUATION, BUY, or SELL",
		},
		{
			name:    "Missing asset should fail",
			op:      Operation{Kind: OperationKindBuy, Amount: decimal.NewFromInt(1), Date: date},
			wantErr: true,
			errMsg:  "invalid asset_id: operation must reference an asset",
		},
		{
			name:    "Missing date should fail",
			op:      Operation{AssetID: assetID, Kind: OperationKindBuy, Amount: decimal.NewFromInt(1)},
			wantErr: true,
			errMsg:  "invalid date: operation date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOperation_ValidateAgainst(t *testing.T) {
	asset := validAsset() // inception 2024-01-15

	t.Run("Operation on inception day should pass", func(t *testing.T) {
		op := Operation{AssetID: asset.ID, Kind: OperationKindBuy, Amount: decimal.NewFromInt(10), Date: asset.InceptionDate}
		assert.NoError(t, op.ValidateAgainst(&asset))
	})

	t.Run("Operation before inception should fail", func(t *testing.T) {
		op := Operation{
			AssetID: asset.ID,
			Kind:    OperationKindRevaluation,
			Amount:  decimal.NewFromInt(10),
			Date:    time.Date(2024, time.January, 14, 23, 0, 0, 0, time.UTC),
		}
		err := op.ValidateAgainst(&asset)
		require.Error(t, err)
		assert.Equal(t, "invalid date: operation date 2024-01-14 is before asset inception 2024-01-15", err.Error())
	})

	t.Run("Operation for another asset should fail", func(t *testing.T) {
		op := Operation{AssetID: uuid.New(), Kind: OperationKindBuy, Amount: decimal.NewFromInt(10), Date: asset.InceptionDate}
		assert.ErrorIs(t, op.ValidateAgainst(&asset), ErrInvalidArgument)
	})
}
