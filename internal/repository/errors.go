// Package repository contains data access logic separated from HTTP handlers
// and the client-side gateway. This file defines sentinel errors shared by
// the repositories so that higher layers can distinguish failure scenarios
// without string matching.
package repository

import "errors"

// ErrNotFound is returned when a record addressed by id does not exist or
// belongs to a different owner. Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("record not found")

// ErrEmailExists is returned by UserRepo.Create when the normalized email is
// already registered. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")
