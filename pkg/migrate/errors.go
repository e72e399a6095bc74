// SPDX-License-Identifier: Apache-2.0

package migrate

import "errors"

// ErrSourceNotFound is returned when the directory or file to migrate does
// not exist.
var ErrSourceNotFound = errors.New("source does not exist")
