package client

import "errors"

var errNilDependencies = errors.New("client services and config are required")
