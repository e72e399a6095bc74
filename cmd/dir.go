// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
)

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", path, errNotADirectory)
	}
	return nil
}
