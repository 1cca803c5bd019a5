package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
)

// assetsCmd lists the owner's assets
type assetsCmd struct {
	name      string
	class     string
	subclass  string
	custodian string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list tracked assets" }
func (*assetsCmd) Usage() string {
	return `assets [-name <text>] [-class <text>] [-subclass <text>] [-custodian <text>]

  Lists the owner's assets. Filters match case-insensitive substrings.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "filter by name")
	f.StringVar(&c.class, "class", "", "filter by class")
	f.StringVar(&c.subclass, "subclass", "", "filter by subclass")
	f.StringVar(&c.custodian, "custodian", "", "filter by custodian")
}

func (c *assetsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.ListAssets(s.ctx, &carteirav1.ListAssetsRequest{
		OwnerId: *ownerID,
		Filter: &carteirav1.AssetFilter{
			Name:      c.name,
			Class:     c.class,
			Subclass:  c.subclass,
			Custodian: c.custodian,
		},
	})
	if err != nil {
		return fail("Error listing assets: %v", err)
	}

	w := stdoutTable()
	fmt.Fprintln(w, "ID\tName\tClass\tSubclass\tCustodian\tInception")
	for _, a := range resp.Assets {
		fmt.Fprintln(w, assetRow(a))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

// addAssetCmd registers a new asset
type addAssetCmd struct {
	name      string
	class     string
	subclass  string
	custodian string
	value     string
	date      string
	notes     string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "register a new asset" }
func (*addAssetCmd) Usage() string {
	return `add-asset -name <name> -class <class> -subclass <subclass> -value <amount> -date <yyyy-mm-dd> [-custodian <text>] [-notes <text>]

  Registers an asset with its inception value and date.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "asset name")
	f.StringVar(&c.class, "class", "", "asset class (FIXED_INCOME, VARIABLE_INCOME)")
	f.StringVar(&c.subclass, "subclass", "", "asset subclass")
	f.StringVar(&c.custodian, "custodian", "", "custodian institution")
	f.StringVar(&c.value, "value", "", "inception value")
	f.StringVar(&c.date, "date", "", "inception date (yyyy-mm-dd)")
	f.StringVar(&c.notes, "notes", "", "free-form notes")
}

func (c *addAssetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.value == "" || c.date == "" {
		return fail("-name, -value and -date are required")
	}

	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.CreateAsset(s.ctx, &carteirav1.CreateAssetRequest{
		OwnerId:        *ownerID,
		Name:           c.name,
		Class:          strings.ToUpper(c.class),
		Subclass:       strings.ToUpper(c.subclass),
		Custodian:      c.custodian,
		InceptionValue: c.value,
		InceptionDate:  c.date,
		Notes:          c.notes,
	})
	if err != nil {
		return fail("Error creating asset: %v", err)
	}
	fmt.Println(resp.Asset.Id)
	return subcommands.ExitSuccess
}

// recordCmd records a revaluation, buy or sell
type recordCmd struct {
	asset  string
	kind   string
	amount string
	date   string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an operation on an asset" }
func (*recordCmd) Usage() string {
	return `record -asset <id> -kind <REVALUATION|BUY|SELL> -amount <amount> -date <yyyy-mm-dd>

  Records an operation. A revaluation sets the asset value, buys and sells move it.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "asset id")
	f.StringVar(&c.kind, "kind", "REVALUATION", "operation kind")
	f.StringVar(&c.amount, "amount", "", "operation amount")
	f.StringVar(&c.date, "date", "", "operation date (yyyy-mm-dd)")
}

func (c *recordCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.amount == "" || c.date == "" {
		return fail("-asset, -amount and -date are required")
	}

	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.RecordOperation(s.ctx, &carteirav1.RecordOperationRequest{
		OwnerId: *ownerID,
		AssetId: c.asset,
		Kind:    strings.ToUpper(c.kind),
		Amount:  c.amount,
		Date:    c.date,
	})
	if err != nil {
		return fail("Error recording operation: %v", err)
	}
	fmt.Println(resp.Operation.Id)
	return subcommands.ExitSuccess
}

// operationsCmd lists operations, newest first
type operationsCmd struct {
	asset string
	kind  string
}

func (*operationsCmd) Name() string     { return "operations" }
func (*operationsCmd) Synopsis() string { return "list recorded operations" }
func (*operationsCmd) Usage() string {
	return `operations [-asset <id>] [-kind <REVALUATION|BUY|SELL>]

  Lists operations, newest first.
`
}

func (c *operationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "only operations of this asset")
	f.StringVar(&c.kind, "kind", "", "only operations of this kind")
}

func (c *operationsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := dial(ctx)
	if err != nil {
		return fail("Error: %v", err)
	}
	defer s.close()

	resp, err := s.client.ListOperations(s.ctx, &carteirav1.ListOperationsRequest{
		OwnerId: *ownerID,
		AssetId: c.asset,
		Kind:    strings.ToUpper(c.kind),
	})
	if err != nil {
		return fail("Error listing operations: %v", err)
	}

	w := stdoutTable()
	fmt.Fprintln(w, "Date\tKind\tAmount\tAsset\tID")
	for _, op := range resp.Operations {
		fmt.Fprintln(w, operationRow(op))
	}
	w.Flush()
	return subcommands.ExitSuccess
}
