// Package analyzers adapts the raw primitives of a models.LinguisticService
// into the normalized results textparser reports. Every analyzer returns its
// neutral result alongside any error so callers can carry on.
package analyzers

import (
	"github.com/getzep/textparser/internal"
)

var log = internal.GetLogger()
