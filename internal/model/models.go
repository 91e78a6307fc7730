package model

import (
	"database/sql"
	"time"

	"vpath-go/internal/vpath"
)

// Mount maps a virtual prefix onto a target prefix.
// Resolution is purely lexical; neither side has to exist anywhere.
type Mount struct {
	ID        string     // UUID, or "config" for mounts declared in the config file
	Virtual   vpath.Path // Absolute virtual prefix
	Target    vpath.Path // Prefix substituted for Virtual
	CreatedAt time.Time
	Static    bool // Declared in config rather than stored
}

// Operation records a CLI command that changed the mount table.
type Operation struct {
	ID         int64 // Auto-increment
	Operation  string
	Parameters string
	Status     string // "success" or "error"
	StartedAt  time.Time
	FinishedAt sql.NullTime
}
