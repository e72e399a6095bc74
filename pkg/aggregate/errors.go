// SPDX-License-Identifier: Apache-2.0

package aggregate

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlotType is reported for plots of type line.
var ErrUnsupportedPlotType = errors.New("line plots are not supported")

type InvalidPlotTypeError struct {
	Type string
}

func (e InvalidPlotTypeError) Error() string {
	return fmt.Sprintf("invalid graph type %q", e.Type)
}
