package grpc

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"github.com/simaogato/carteira-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/logger"
	"github.com/simaogato/carteira-backend/internal/usecase/benchmark"
	"github.com/simaogato/carteira-backend/internal/usecase/ledger"
	"github.com/simaogato/carteira-backend/internal/usecase/portfolio"
	"github.com/simaogato/carteira-backend/internal/usecase/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	testToken = "bufconn-token"
	testOwner = "6f1c9f57-3c55-4a39-9a0e-6f4a1f0d2b11"
)

// staticIndex is a benchmark provider answering fixed monthly returns
type staticIndex struct {
	name    string
	returns map[string]string
}

func (p staticIndex) Name() string { return p.name }

func (p staticIndex) GetMonthlyReturns(_ context.Context, start, end domain.Month) (map[domain.Month]decimal.Decimal, error) {
	out := make(map[domain.Month]decimal.Decimal)
	for month, value := range p.returns {
		m, err := domain.ParseMonth(month)
		if err != nil {
			return nil, err
		}
		if !m.Before(start) && !m.After(end) {
			out[m] = decimal.RequireFromString(value)
		}
	}
	return out, nil
}

// startServer wires the full stack on a SQLite file and serves it over bufconn
func startServer(t *testing.T) carteirav1.PortfolioServiceClient {
	t.Helper()

	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "grpc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	log := logger.Nop()
	assetRepo := sqlite.NewAssetRepository(db)
	operationRepo := sqlite.NewOperationRepository(db)
	store := series.NewStore(assetRepo, operationRepo, sqlite.NewMonthlyValueRepository(db), log)

	benchmarks := benchmark.NewService([]domain.BenchmarkProvider{
		staticIndex{name: "CDI", returns: map[string]string{"2023-02": "1", "2023-03": "1", "2023-04": "1"}},
	}, log)

	server := NewServer(
		ledger.NewLedgerService(assetRepo, operationRepo, store, log),
		portfolio.NewPortfolioService(assetRepo, operationRepo, store, benchmarks, log),
	)

	listener := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(log),
		AuthInterceptor(testToken),
	))
	carteirav1.RegisterPortfolioServiceServer(grpcServer, server)
	go grpcServer.Serve(listener)
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return carteirav1.NewPortfolioServiceClient(conn)
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", testToken)
}

func TestServer_ValuationFlow(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	created, err := client.CreateAsset(ctx, &carteirav1.CreateAssetRequest{
		OwnerId:        testOwner,
		Name:           "CDB Banco Inter 110% CDI",
		Class:          string(domain.AssetClassFixedIncome),
		Subclass:       string(domain.AssetSubclassCDB),
		Custodian:      "Inter",
		InceptionValue: "1000",
		InceptionDate:  "2023-01-01",
	})
	require.NoError(t, err)
	assetID := created.Asset.Id

	for _, op := range []*carteirav1.RecordOperationRequest{
		{Kind: "BUY", Amount: "200", Date: "2023-02-10"},
		{Kind: "REVALUATION", Amount: "1300", Date: "2023-03-05"},
		{Kind: "SELL", Amount: "100", Date: "2023-04-20"},
	} {
		op.OwnerId = testOwner
		op.AssetId = assetID
		_, err := client.RecordOperation(ctx, op)
		require.NoError(t, err)
	}

	monthly, err := client.GetMonthlySeries(ctx, &carteirav1.GetMonthlySeriesRequest{OwnerId: testOwner, AssetId: assetID})
	require.NoError(t, err)
	require.Len(t, monthly.Points, 4)
	values := make([]string, 0, len(monthly.Points))
	for _, p := range monthly.Points {
		values = append(values, p.Month+"="+p.Value)
	}
	assert.Equal(t, []string{"2023-01=1000", "2023-02=1200", "2023-03=1300", "2023-04=1200"}, values)

	total, err := client.GetReturn(ctx, &carteirav1.GetReturnRequest{OwnerId: testOwner, AssetId: assetID, Evaluation: "2023-04"})
	require.NoError(t, err)
	assert.Equal(t, "1100", total.Baseline)
	assert.Equal(t, "100", total.Absolute)
	assert.Equal(t, "9.0909", total.Percentage)

	oneMonth, err := client.GetReturn(ctx, &carteirav1.GetReturnRequest{OwnerId: testOwner, AssetId: assetID, Evaluation: "2023-04", WindowMonths: 1})
	require.NoError(t, err)
	assert.Equal(t, "0.0000", oneMonth.Percentage)

	summary, err := client.GetPortfolioSummary(ctx, &carteirav1.GetPortfolioSummaryRequest{OwnerId: testOwner, AsOf: "2023-04"})
	require.NoError(t, err)
	assert.Equal(t, "1200", summary.TotalValue)
	require.Len(t, summary.Assets, 1)
	assert.Equal(t, "2023-04-20", summary.Assets[0].LastActivity)
	assert.Len(t, summary.Monthly, 4)

	composition, err := client.GetCompositionBreakdown(ctx, &carteirav1.GetCompositionBreakdownRequest{OwnerId: testOwner, AsOf: "2023-04", GroupBy: "CUSTODIAN"})
	require.NoError(t, err)
	require.Len(t, composition.Slices, 1)
	assert.Equal(t, "Inter", composition.Slices[0].Key)
	assert.Equal(t, "100.0000", composition.Slices[0].Share)

	comparison, err := client.GetBenchmarkComparison(ctx, &carteirav1.GetBenchmarkComparisonRequest{OwnerId: testOwner, AsOf: "2023-04", Indices: []string{"CDI", "IFIX"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01", "2023-02", "2023-03", "2023-04"}, comparison.Months)
	require.Len(t, comparison.Indices, 1)
	assert.Equal(t, "CDI", comparison.Indices[0].Name)
	assert.Equal(t, "3.0301", comparison.Indices[0].Points[3].Percentage)
	assert.Equal(t, []string{"IFIX"}, comparison.Unavailable)

	names, err := client.ListBenchmarks(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"CDI"}, names.Names)
}

func TestServer_LedgerEdits(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	created, err := client.CreateAsset(ctx, &carteirav1.CreateAssetRequest{
		OwnerId:        testOwner,
		Name:           "PETR4",
		Class:          string(domain.AssetClassVariableIncome),
		Subclass:       string(domain.AssetSubclassStock),
		InceptionValue: "500",
		InceptionDate:  "2024-01-15",
	})
	require.NoError(t, err)
	assetID := created.Asset.Id

	recorded, err := client.RecordOperation(ctx, &carteirav1.RecordOperationRequest{
		OwnerId: testOwner, AssetId: assetID, Kind: "REVALUATION", Amount: "650", Date: "2024-03-01",
	})
	require.NoError(t, err)

	amount := "700"
	_, err = client.UpdateOperation(ctx, &carteirav1.UpdateOperationRequest{
		OwnerId: testOwner, OperationId: recorded.Operation.Id, Amount: &amount,
	})
	require.NoError(t, err)

	monthly, err := client.GetMonthlySeries(ctx, &carteirav1.GetMonthlySeriesRequest{OwnerId: testOwner, AssetId: assetID})
	require.NoError(t, err)
	require.Len(t, monthly.Points, 3)
	assert.Equal(t, "700", monthly.Points[2].Value, "the edit recomputes the series")

	lateInception := "2024-04-01"
	_, err = client.UpdateAsset(ctx, &carteirav1.UpdateAssetRequest{OwnerId: testOwner, AssetId: assetID, InceptionDate: &lateInception})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "an operation would predate the new inception")

	listed, err := client.ListOperations(ctx, &carteirav1.ListOperationsRequest{OwnerId: testOwner, AssetId: assetID})
	require.NoError(t, err)
	require.Len(t, listed.Operations, 1)

	_, err = client.DeleteOperation(ctx, &carteirav1.DeleteOperationRequest{OwnerId: testOwner, OperationId: recorded.Operation.Id})
	require.NoError(t, err)

	assets, err := client.ListAssets(ctx, &carteirav1.ListAssetsRequest{OwnerId: testOwner, Filter: &carteirav1.AssetFilter{Name: "petr"}})
	require.NoError(t, err)
	require.Len(t, assets.Assets, 1)

	_, err = client.DeleteAsset(ctx, &carteirav1.DeleteAssetRequest{OwnerId: testOwner, AssetId: assetID})
	require.NoError(t, err)

	_, err = client.GetMonthlySeries(ctx, &carteirav1.GetMonthlySeriesRequest{OwnerId: testOwner, AssetId: assetID})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_Errors(t *testing.T) {
	client := startServer(t)

	_, err := client.ListAssets(context.Background(), &carteirav1.ListAssetsRequest{OwnerId: testOwner})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := authed()

	_, err = client.ListAssets(ctx, &carteirav1.ListAssetsRequest{OwnerId: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateAsset(ctx, &carteirav1.CreateAssetRequest{
		OwnerId: testOwner, Name: "Bad", Class: "FIXED_INCOME", Subclass: "STOCK", InceptionValue: "1", InceptionDate: "2024-01-01",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "subclass")

	_, err = client.GetReturn(ctx, &carteirav1.GetReturnRequest{OwnerId: testOwner, AssetId: testOwner, WindowMonths: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetCompositionBreakdown(ctx, &carteirav1.GetCompositionBreakdownRequest{OwnerId: testOwner, GroupBy: "COLOR"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetMonthlySeries(ctx, &carteirav1.GetMonthlySeriesRequest{OwnerId: testOwner, AssetId: testOwner, Through: "2024-13"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	empty, err := client.GetPortfolioSummary(ctx, &carteirav1.GetPortfolioSummaryRequest{OwnerId: testOwner})
	require.NoError(t, err)
	assert.Equal(t, "0", empty.TotalValue)
	assert.Empty(t, empty.Assets)
}
