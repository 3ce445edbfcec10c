//go:build tools
// +build tools

package tools

// Tracks development tool versions in go.mod. Nothing here is compiled into
// the service.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "golang.org/x/perf/cmd/benchstat"
)
