package database

import "errors"

// ErrNotFound is returned when a requested row does not exist or belongs to
// another user.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when registering with an email that is already in use.
var ErrEmailTaken = errors.New("email already registered")

// ErrWordExists is returned when creating a vocabulary entry for a word the
// user already has.
var ErrWordExists = errors.New("word already exists")
