// SPDX-License-Identifier: Apache-2.0

package cmd

import "errors"

var errNotADirectory = errors.New("not a directory")
