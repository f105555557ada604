package constants

import "time"

// Database connection pool tuning.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Asynq task types handled by the notification worker.
const (
	TaskTypeEventConfirmation = "email:event_confirmation"
	TaskTypeContactEmails     = "email:contact"
)

// Notification queue settings. Delivery is best-effort: a task that keeps
// failing is dropped after MaxRetry attempts rather than held forever.
const (
	NotificationQueue    = "notifications"
	NotificationMaxRetry = 3
)

// Event listing read path.
const (
	EventListMaxRetries   = 3
	EventListRetryBackoff = 200 * time.Millisecond
	EventListCacheTTL     = 30 * time.Second
)

// Redis key prefixes.
const (
	RedisKeyEventList = "events:published:"
	RedisKeyUserRoles = "roles:"
)

// Role cache TTL is short so revoked roles take effect quickly.
const UserRolesCacheTTL = 60 * time.Second

// Pagination defaults.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)
