package autoparse

import "time"

// Source selector keywords - the fixed mapping from a tag's first path
// segment to a collaborator store. Any other identifier is a named-global
// lookup.
const (
	SourceSession  = "session"
	SourcePost     = "post"
	SourceGet      = "get"
	SourceCookie   = "cookie"
	SourceServer   = "server"
	SourceRegistry = "registry"
)

// Post-processor names
const (
	PostProcJSON   = "json"
	PostProcPJSON  = "pjson"
	PostProcLength = "length"
	PostProcCount  = "count"
	PostProcUpper  = "upper"
	PostProcLower  = "lower"
	PostProcUnset  = "unset"
)

// Default resolution limits
const (
	DefaultMaxTagLength = 512
	DefaultMaxRefDepth  = 16
)

// Registry token constants
const (
	RegistryTokenPrefix = "reg_"
	RegistryTokenBytes  = 9
)

// Session driver names
const (
	SessionDriverNameMemory   = "memory"
	SessionDriverNamePostgres = "postgres"
)

// PostgreSQL session store configuration defaults
const (
	PostgresTablePrefix            = "autoparse_"
	PostgresSessionTableName       = "sessions"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Server-map keys populated by ScopeFromRequest, following the CGI-style
// naming convention request-facing templates expect.
const (
	ServerKeyRequestMethod  = "REQUEST_METHOD"
	ServerKeyRequestURI     = "REQUEST_URI"
	ServerKeyQueryString    = "QUERY_STRING"
	ServerKeyHTTPHost       = "HTTP_HOST"
	ServerKeyHTTPUserAgent  = "HTTP_USER_AGENT"
	ServerKeyHTTPReferer    = "HTTP_REFERER"
	ServerKeyRemoteAddr     = "REMOTE_ADDR"
	ServerKeyServerProtocol = "SERVER_PROTOCOL"
)

// Error code constants for categorization
const (
	ErrCodeConfig   = "AUTOPARSE_CONFIG"
	ErrCodeSession  = "AUTOPARSE_SESSION"
	ErrCodeRegistry = "AUTOPARSE_REGISTRY"
	ErrCodeFunc     = "AUTOPARSE_FUNC"
	ErrCodeObject   = "AUTOPARSE_OBJECT"
	ErrCodeScope    = "AUTOPARSE_SCOPE"
)

// Error message constants - ALL error messages must be constants
const (
	ErrMsgInvalidMaxTagLength  = "max tag length must be positive"
	ErrMsgInvalidMaxRefDepth   = "max reference depth must be positive"
	ErrMsgSessionClosed        = "session store is closed"
	ErrMsgSessionLoadFailed    = "session load failed"
	ErrMsgSessionFlushFailed   = "session flush failed"
	ErrMsgSessionCloseFailed   = "session store close failed"
	ErrMsgSessionConnectFailed = "failed to connect session store"
	ErrMsgSessionMigrateFailed = "session store migration failed"
	ErrMsgSessionEmptyConnStr  = "session store connection string is empty"
	ErrMsgSessionEmptyID       = "session id cannot be empty"
	ErrMsgUnknownSessionDriver = "unknown session driver"
	ErrMsgDuplicateDriver      = "session driver already registered"
	ErrMsgCryptoRandFailure    = "cryptographic random number generator failure"
	ErrMsgFuncNil              = "function cannot be nil"
	ErrMsgFuncEmptyName        = "function name cannot be empty"
	ErrMsgFuncExists           = "function already registered"
	ErrMsgFuncNotFound         = "function not found"
	ErrMsgFuncTooFewArgs       = "too few arguments"
	ErrMsgFuncTooManyArgs      = "too many arguments"
	ErrMsgMethodNotFound       = "method not registered on object"
	ErrMsgScopeFormParseFailed = "request form parsing failed"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyDriver    = "driver"
	MetaKeySessionID = "session_id"
	MetaKeyFuncName  = "func_name"
	MetaKeyMethod    = "method"
	MetaKeyMinArgs   = "min_args"
	MetaKeyMaxArgs   = "max_args"
	MetaKeyArgCount  = "arg_count"
	MetaKeyOption    = "option"
	MetaKeyValue     = "value"
)

// Built-in free function names
const (
	FuncNameConcat   = "concat"
	FuncNameUpper    = "upper"
	FuncNameLower    = "lower"
	FuncNameTrim     = "trim"
	FuncNameReplace  = "replace"
	FuncNameLength   = "length"
	FuncNameDefault  = "default"
	FuncNameCoalesce = "coalesce"
)
