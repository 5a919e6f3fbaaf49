// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/batch_registry.go -destination=batch_registry_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/inoculation_ledger.go -destination=inoculation_ledger_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/report_exporter.go -destination=report_exporter_mock.go -package=mocks
