package domain

import "errors"

// ErrNoResults covers every backend outcome the user reads as "nothing
// found": ZERO_RESULTS as well as an OK reply with an empty list.
var ErrNoResults = errors.New("no results")
