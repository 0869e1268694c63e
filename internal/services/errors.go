package services

import "errors"

// ErrNotFound marks a lookup whose subject does not exist or has no
// reportable value, such as an item price average for a merchant that
// lists no items.
var ErrNotFound = errors.New("resource not found")
