package snapshot

import "errors"

// ErrNoSnapshot signals that a scoring operation ran before any dataset
// snapshot was published.
var ErrNoSnapshot = errors.New("no dataset snapshot published")
