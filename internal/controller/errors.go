package controller

import "errors"

// ErrNotLoggedIn is returned by operations that require an
// authenticated principal.
var ErrNotLoggedIn = errors.New("no user is logged in")
