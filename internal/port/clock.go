package port

import "time"

// Clock supplies the current instant. Handlers sample it once per request
// and pass the value down, so the core never reads ambient time itself.
type Clock interface {
	Now() time.Time
}
