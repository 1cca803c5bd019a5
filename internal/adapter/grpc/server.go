package grpc

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"github.com/simaogato/carteira-backend/internal/domain"
	"github.com/simaogato/carteira-backend/internal/usecase/benchmark"
	"github.com/simaogato/carteira-backend/internal/usecase/ledger"
	"github.com/simaogato/carteira-backend/internal/usecase/portfolio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const timestampLayout = time.RFC3339

// Server implements the PortfolioService gRPC server
type Server struct {
	carteirav1.UnimplementedPortfolioServiceServer

	LedgerService    *ledger.LedgerService
	PortfolioService *portfolio.PortfolioService
}

// NewServer creates a new gRPC server instance
func NewServer(ledgerService *ledger.LedgerService, portfolioService *portfolio.PortfolioService) *Server {
	return &Server{
		LedgerService:    ledgerService,
		PortfolioService: portfolioService,
	}
}

// CreateAsset handles the CreateAsset RPC
func (s *Server) CreateAsset(ctx context.Context, req *carteirav1.CreateAssetRequest) (*carteirav1.AssetResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	inceptionValue, err := parseDecimal("inception_value", req.InceptionValue)
	if err != nil {
		return nil, err
	}

	inceptionDate, err := parseDate("inception_date", req.InceptionDate)
	if err != nil {
		return nil, err
	}

	asset, err := s.LedgerService.CreateAsset(ctx, &domain.Asset{
		OwnerID:        ownerID,
		Name:           req.Name,
		Class:          domain.AssetClass(req.Class),
		Subclass:       domain.AssetSubclass(req.Subclass),
		Custodian:      req.Custodian,
		InceptionValue: inceptionValue,
		InceptionDate:  inceptionDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &carteirav1.AssetResponse{Asset: domainAssetToProto(asset)}, nil
}

// UpdateAsset handles the UpdateAsset RPC
func (s *Server) UpdateAsset(ctx context.Context, req *carteirav1.UpdateAssetRequest) (*carteirav1.AssetResponse, error) {
	ownerID, assetID, err := parseOwnerAndID(req.OwnerId, "asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	update := ledger.AssetUpdate{
		Name:      req.Name,
		Custodian: req.Custodian,
		Notes:     req.Notes,
	}
	if req.Class != nil {
		class := domain.AssetClass(*req.Class)
		update.Class = &class
	}
	if req.Subclass != nil {
		subclass := domain.AssetSubclass(*req.Subclass)
		update.Subclass = &subclass
	}
	if req.InceptionValue != nil {
		value, err := parseDecimal("inception_value", *req.InceptionValue)
		if err != nil {
			return nil, err
		}
		update.InceptionValue = &value
	}
	if req.InceptionDate != nil {
		date, err := parseDate("inception_date", *req.InceptionDate)
		if err != nil {
			return nil, err
		}
		update.InceptionDate = &date
	}

	asset, err := s.LedgerService.UpdateAsset(ctx, ownerID, assetID, update)
	if err != nil {
		return nil, mapError(err)
	}

	return &carteirav1.AssetResponse{Asset: domainAssetToProto(asset)}, nil
}

// DeleteAsset handles the DeleteAsset RPC
func (s *Server) DeleteAsset(ctx context.Context, req *carteirav1.DeleteAssetRequest) (*emptypb.Empty, error) {
	ownerID, assetID, err := parseOwnerAndID(req.OwnerId, "asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	if err := s.LedgerService.DeleteAsset(ctx, ownerID, assetID); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// ListAssets handles the ListAssets RPC
func (s *Server) ListAssets(ctx context.Context, req *carteirav1.ListAssetsRequest) (*carteirav1.ListAssetsResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	assets, err := s.LedgerService.ListAssets(ctx, ownerID, protoFilterToDomain(req.Filter))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.ListAssetsResponse{Assets: make([]*carteirav1.Asset, 0, len(assets))}
	for _, asset := range assets {
		resp.Assets = append(resp.Assets, domainAssetToProto(asset))
	}
	return resp, nil
}

// RecordOperation handles the RecordOperation RPC
func (s *Server) RecordOperation(ctx context.Context, req *carteirav1.RecordOperationRequest) (*carteirav1.OperationResponse, error) {
	ownerID, assetID, err := parseOwnerAndID(req.OwnerId, "asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	op, err := s.LedgerService.RecordOperation(ctx, ownerID, &domain.Operation{
		AssetID: assetID,
		Kind:    domain.OperationKind(req.Kind),
		Amount:  amount,
		Date:    date,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &carteirav1.OperationResponse{Operation: domainOperationToProto(op)}, nil
}

// UpdateOperation handles the UpdateOperation RPC
func (s *Server) UpdateOperation(ctx context.Context, req *carteirav1.UpdateOperationRequest) (*carteirav1.OperationResponse, error) {
	ownerID, operationID, err := parseOwnerAndID(req.OwnerId, "operation_id", req.OperationId)
	if err != nil {
		return nil, err
	}

	var update ledger.OperationUpdate
	if req.Kind != nil {
		kind := domain.OperationKind(*req.Kind)
		update.Kind = &kind
	}
	if req.Amount != nil {
		amount, err := parseDecimal("amount", *req.Amount)
		if err != nil {
			return nil, err
		}
		update.Amount = &amount
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		update.Date = &date
	}

	op, err := s.LedgerService.UpdateOperation(ctx, ownerID, operationID, update)
	if err != nil {
		return nil, mapError(err)
	}

	return &carteirav1.OperationResponse{Operation: domainOperationToProto(op)}, nil
}

// DeleteOperation handles the DeleteOperation RPC
func (s *Server) DeleteOperation(ctx context.Context, req *carteirav1.DeleteOperationRequest) (*emptypb.Empty, error) {
	ownerID, operationID, err := parseOwnerAndID(req.OwnerId, "operation_id", req.OperationId)
	if err != nil {
		return nil, err
	}

	if err := s.LedgerService.DeleteOperation(ctx, ownerID, operationID); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// ListOperations handles the ListOperations RPC
func (s *Server) ListOperations(ctx context.Context, req *carteirav1.ListOperationsRequest) (*carteirav1.ListOperationsResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	filter := domain.OperationFilter{Kind: domain.OperationKind(req.Kind)}
	if req.AssetId != "" {
		assetID, err := parseID("asset_id", req.AssetId)
		if err != nil {
			return nil, err
		}
		filter.AssetID = &assetID
	}

	ops, err := s.LedgerService.ListOperations(ctx, ownerID, filter)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.ListOperationsResponse{Operations: make([]*carteirav1.Operation, 0, len(ops))}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, domainOperationToProto(op))
	}
	return resp, nil
}

// GetMonthlySeries handles the GetMonthlySeries RPC
func (s *Server) GetMonthlySeries(ctx context.Context, req *carteirav1.GetMonthlySeriesRequest) (*carteirav1.GetMonthlySeriesResponse, error) {
	ownerID, assetID, err := parseOwnerAndID(req.OwnerId, "asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	through, err := parseMonth("through", req.Through)
	if err != nil {
		return nil, err
	}

	series, err := s.PortfolioService.GetMonthlySeries(ctx, ownerID, assetID, through)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.GetMonthlySeriesResponse{
		InceptionValue: series.InceptionValue.String(),
		Points:         make([]*carteirav1.MonthlyPoint, 0, series.Len()),
	}
	for _, p := range series.Points {
		resp.Points = append(resp.Points, &carteirav1.MonthlyPoint{
			Month: p.Month.String(),
			Value: p.Value.String(),
			Buys:  p.Buys.String(),
			Sells: p.Sells.String(),
		})
	}
	return resp, nil
}

// GetReturn handles the GetReturn RPC
func (s *Server) GetReturn(ctx context.Context, req *carteirav1.GetReturnRequest) (*carteirav1.ReturnFigure, error) {
	ownerID, assetID, err := parseOwnerAndID(req.OwnerId, "asset_id", req.AssetId)
	if err != nil {
		return nil, err
	}

	evaluation, err := parseMonth("evaluation", req.Evaluation)
	if err != nil {
		return nil, err
	}

	figure, err := s.PortfolioService.GetReturn(ctx, ownerID, assetID, evaluation, domain.Window(req.WindowMonths))
	if err != nil {
		return nil, mapError(err)
	}

	return domainFigureToProto(figure), nil
}

// GetPortfolioSummary handles the GetPortfolioSummary RPC
func (s *Server) GetPortfolioSummary(ctx context.Context, req *carteirav1.GetPortfolioSummaryRequest) (*carteirav1.PortfolioSummary, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	asOf, err := parseMonth("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	summary, err := s.PortfolioService.GetPortfolioSummary(ctx, ownerID, asOf, protoFilterToDomain(req.Filter))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.PortfolioSummary{
		AsOf:        summary.AsOf.String(),
		TotalValue:  summary.TotalValue.String(),
		Return1M:    domainFigureToProto(summary.Return1M),
		Return1Y:    domainFigureToProto(summary.Return1Y),
		ReturnTotal: domainFigureToProto(summary.ReturnTotal),
		Monthly:     make([]*carteirav1.MonthlyReturn, 0, len(summary.Monthly)),
		Assets:      make([]*carteirav1.AssetSummary, 0, len(summary.Assets)),
	}
	for _, m := range summary.Monthly {
		resp.Monthly = append(resp.Monthly, &carteirav1.MonthlyReturn{
			Month:  m.Month.String(),
			Value:  m.Value.String(),
			Return: domainFigureToProto(m.ReturnFigure),
		})
	}
	for _, a := range summary.Assets {
		resp.Assets = append(resp.Assets, &carteirav1.AssetSummary{
			Asset:        domainAssetToProto(a.Asset),
			CurrentValue: a.CurrentValue.String(),
			LastActivity: a.LastActivity.Format(domain.DateFormat),
			Return1M:     domainFigureToProto(a.Return1M),
			Return1Y:     domainFigureToProto(a.Return1Y),
			ReturnTotal:  domainFigureToProto(a.ReturnTotal),
		})
	}
	return resp, nil
}

// GetCompositionBreakdown handles the GetCompositionBreakdown RPC
func (s *Server) GetCompositionBreakdown(ctx context.Context, req *carteirav1.GetCompositionBreakdownRequest) (*carteirav1.GetCompositionBreakdownResponse, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	asOf, err := parseMonth("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	slices, err := s.PortfolioService.GetCompositionBreakdown(ctx, ownerID, asOf, domain.GroupKey(req.GroupBy))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.GetCompositionBreakdownResponse{Slices: make([]*carteirav1.CompositionSlice, 0, len(slices))}
	for _, slice := range slices {
		resp.Slices = append(resp.Slices, &carteirav1.CompositionSlice{
			Key:   slice.Key,
			Value: slice.Value.String(),
			Share: formatPercent(slice.Share),
		})
	}
	return resp, nil
}

// GetBenchmarkComparison handles the GetBenchmarkComparison RPC
func (s *Server) GetBenchmarkComparison(ctx context.Context, req *carteirav1.GetBenchmarkComparisonRequest) (*carteirav1.BenchmarkComparison, error) {
	ownerID, err := parseID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}

	asOf, err := parseMonth("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	comparison, err := s.PortfolioService.GetBenchmarkComparison(ctx, ownerID, asOf, req.Indices)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &carteirav1.BenchmarkComparison{
		Months:      make([]string, 0, len(comparison.Months)),
		Portfolio:   accumulatedToProto(comparison.Portfolio),
		Unavailable: comparison.Unavailable,
	}
	for _, m := range comparison.Months {
		resp.Months = append(resp.Months, m.String())
	}
	for _, name := range sortedKeys(comparison.Indices) {
		resp.Indices = append(resp.Indices, &carteirav1.IndexSeries{
			Name:   name,
			Points: accumulatedToProto(comparison.Indices[name]),
		})
	}
	return resp, nil
}

// ListBenchmarks handles the ListBenchmarks RPC
func (s *Server) ListBenchmarks(ctx context.Context, _ *emptypb.Empty) (*carteirav1.ListBenchmarksResponse, error) {
	resp := &carteirav1.ListBenchmarksResponse{Names: []string{}}
	if s.PortfolioService.Benchmarks != nil {
		resp.Names = append(resp.Names, s.PortfolioService.Benchmarks.Names()...)
	}
	return resp, nil
}

// domainAssetToProto converts a domain Asset to its wire message
func domainAssetToProto(asset *domain.Asset) *carteirav1.Asset {
	if asset == nil {
		return nil
	}
	protoAsset := &carteirav1.Asset{
		Id:             asset.ID.String(),
		OwnerId:        asset.OwnerID.String(),
		Name:           asset.Name,
		Class:          string(asset.Class),
		Subclass:       string(asset.Subclass),
		Custodian:      asset.Custodian,
		InceptionValue: asset.InceptionValue.String(),
		InceptionDate:  asset.InceptionDate.Format(domain.DateFormat),
		Notes:          asset.Notes,
	}
	if !asset.CreatedAt.IsZero() {
		protoAsset.CreatedAt = asset.CreatedAt.UTC().Format(timestampLayout)
	}
	return protoAsset
}

// domainOperationToProto converts a domain Operation to its wire message
func domainOperationToProto(op *domain.Operation) *carteirav1.Operation {
	protoOp := &carteirav1.Operation{
		Id:      op.ID.String(),
		AssetId: op.AssetID.String(),
		Kind:    string(op.Kind),
		Amount:  op.Amount.String(),
		Date:    op.Date.Format(domain.DateFormat),
	}
	if !op.CreatedAt.IsZero() {
		protoOp.CreatedAt = op.CreatedAt.UTC().Format(timestampLayout)
	}
	return protoOp
}

func domainFigureToProto(f domain.ReturnFigure) *carteirav1.ReturnFigure {
	return &carteirav1.ReturnFigure{
		Baseline:   f.Baseline.String(),
		Absolute:   f.Absolute.String(),
		Percentage: formatPercent(f.Percentage),
	}
}

func accumulatedToProto(points []domain.AccumulatedPoint) []*carteirav1.AccumulatedPoint {
	out := make([]*carteirav1.AccumulatedPoint, 0, len(points))
	for _, p := range points {
		out = append(out, &carteirav1.AccumulatedPoint{
			Month:      p.Month.String(),
			Percentage: formatPercent(p.Percentage),
		})
	}
	return out
}

func protoFilterToDomain(filter *carteirav1.AssetFilter) domain.AssetFilter {
	if filter == nil {
		return domain.AssetFilter{}
	}
	return domain.AssetFilter{
		Name:      filter.Name,
		Class:     filter.Class,
		Subclass:  filter.Subclass,
		Custodian: filter.Custodian,
	}
}

// formatPercent keeps four decimal places; amounts travel unrounded
func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(4)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseOwnerAndID(ownerValue, field, value string) (uuid.UUID, uuid.UUID, error) {
	ownerID, err := parseID("owner_id", ownerValue)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := parseID(field, value)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return ownerID, id, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s format: expected yyyy-mm-dd", field)
	}
	return date, nil
}

// parseMonth accepts an empty value as "current month"
func parseMonth(field, value string) (domain.Month, error) {
	if value == "" {
		return domain.Month{}, nil
	}
	m, err := domain.ParseMonth(value)
	if err != nil {
		return domain.Month{}, status.Errorf(codes.InvalidArgument, "invalid %s format: expected yyyy-mm", field)
	}
	return m, nil
}

func sortedKeys(m map[string][]domain.AccumulatedPoint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, benchmark.ErrUnknownBenchmark):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	default:
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}
