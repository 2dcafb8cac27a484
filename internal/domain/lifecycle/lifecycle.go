package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and long lived clients.
const DefaultTimeout = 10 * time.Second
