package types

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// StorageBackend selects the persistence gateway implementation
type StorageBackend string

const (
	// StorageBackendFile persists the ledger blob to a local file
	StorageBackendFile StorageBackend = "file"
	// StorageBackendPostgres persists the ledger blob to a postgres table
	StorageBackendPostgres StorageBackend = "postgres"
	// StorageBackendMemory keeps the ledger blob in process memory only
	StorageBackendMemory StorageBackend = "memory"
)
