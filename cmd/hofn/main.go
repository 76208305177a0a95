// Command hofn applies a lifted binary operator (sum, product, max or min)
// to the values of a YAML dataset, skipping missing values on request.
//
//	hofn reduce -f data.yaml --skip-missing
//	hofn group -f data.yaml --sorted --op max
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("hofn failed", "err", err)
		os.Exit(1)
	}
}
