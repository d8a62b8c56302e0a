package chatquota

import "errors"

// ErrQuotaExceeded is returned by UseToken when a client has no remote chat
// calls left for the current month.
var ErrQuotaExceeded = errors.New("chat quota exceeded")

// DefaultLimit is the number of remote chat calls granted per client per month.
const DefaultLimit = 100
