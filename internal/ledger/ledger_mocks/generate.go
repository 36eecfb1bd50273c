package ledger_mocks

//go:generate mockgen -source=../client.go -destination=ledger_mocks.go -package=ledger_mocks

// This file contains the go:generate directive to generate mocks for the ledger client.
// To regenerate the mocks, run:
//   go generate ./internal/ledger/ledger_mocks
