package client

import "errors"

var ErrNoUI = errors.New("client UI is required")
