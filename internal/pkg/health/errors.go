package health

import "errors"

// ErrNATSDisconnected indicates the NATS connection has dropped
var ErrNATSDisconnected = errors.New("nats connection is not established")
