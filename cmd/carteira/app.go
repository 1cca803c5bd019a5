package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	carteirav1 "github.com/simaogato/carteira-backend/internal/adapter/grpc/carteira/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverAddr = flag.String("addr", envOr("CARTEIRA_ADDR", "localhost:8080"), "address of the carteira gRPC server")
var apiToken = flag.String("token", envOr("CARTEIRA_TOKEN", "dev-token"), "API token sent as authorization metadata")
var ownerID = flag.String("owner", envOr("CARTEIRA_OWNER", "00000000-0000-0000-0000-00000000d3e0"), "owner whose portfolio is queried")
var callTimeout = flag.Duration("timeout", 30*time.Second, "deadline of each call")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// session is an open connection plus the authorized call context
type session struct {
	client carteirav1.PortfolioServiceClient
	ctx    context.Context
	close  func()
}

// dial connects to the server and prepares a call context carrying the token.
func dial(ctx context.Context) (*session, error) {
	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", *serverAddr, err)
	}

	ctx, cancel := context.WithTimeout(ctx, *callTimeout)
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", *apiToken)

	return &session{
		client: carteirav1.NewPortfolioServiceClient(conn),
		ctx:    ctx,
		close: func() {
			cancel()
			conn.Close()
		},
	}, nil
}

// fail prints the error and returns the failure exit status
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
