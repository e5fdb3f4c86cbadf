package main

import (
	"errors"
	"os"

	"github.com/indexstore-tools/fake-toolchain/internal/cli"
	"github.com/indexstore-tools/fake-toolchain/internal/swiftpm"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *swiftpm.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
