package models

import "errors"

// ErrInvalid marks a payload that decoded but breaks an entity rule.
var ErrInvalid = errors.New("invalid entity")
