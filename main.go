// SPDX-License-Identifier: Apache-2.0

//go:generate go run ./tools/build-cli-definition.go cli-definition.json

package main

import (
	"os"

	"github.com/simreport/simreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
