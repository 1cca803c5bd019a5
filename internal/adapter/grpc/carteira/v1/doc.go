// Package carteirav1 holds the generated messages and gRPC stubs of
// carteira.v1.PortfolioService. Decimals travel as strings, months as
// yyyy-mm and dates as yyyy-mm-dd.
package carteirav1

//go:generate protoc -I ../../../../../api --go_out=../../../../.. --go_opt=module=github.com/simaogato/carteira-backend --go-grpc_out=../../../../.. --go-grpc_opt=module=github.com/simaogato/carteira-backend carteira/v1/portfolio.proto
