package config

import "time"

const (
	// Connections
	MaxRequestNoteLength = 500

	// Messages
	MaxMessageLength       = 2000
	DefaultChannelPageSize = 50
	MaxChannelPageSize     = 200

	// Directory
	MaxProfileNameLength = 120

	// Notifications
	CounterCacheTTL = 30 * time.Second
)
