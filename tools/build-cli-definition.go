// SPDX-License-Identifier: Apache-2.0

// build-cli-definition writes a JSON description of the simreport command
// tree. Usage: go run ./tools/build-cli-definition.go [output-file]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/simreport/simreport/cmd"
)

func main() {
	out := "cli-definition.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	def, err := cmd.Describe(cmd.Prepare())
	if err != nil {
		log.Fatalf("describing commands: %v", err)
	}

	if err := writeJSON(out, def); err != nil {
		log.Fatalf("writing %s: %v", out, err)
	}
	fmt.Printf("CLI definition written to %s\n", out)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
