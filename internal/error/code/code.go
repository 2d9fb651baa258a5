package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 已创建.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusUnprocessableEntity - 422: 无法解析.
	StatusUnprocessableEntity = 422
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: 依赖不可用.
	StatusServiceUnavailable = 503
)

// Common codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing or invalid session.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limited.
	ErrTooManyRequests
	// ErrForbidden - 403: role not allowed.
	ErrForbidden
	// ErrParse - 422: malformed number or date.
	ErrParse
)

// User codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: email already registered.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: wrong credentials.
	ErrUserPasswordIncorrect
)

// Property, room and tenant codes (102xxx).
const (
	// ErrPropertyNotFound - 404.
	ErrPropertyNotFound int = iota + 102000
	// ErrPropertyHasRooms - 409: property still owns rooms.
	ErrPropertyHasRooms
	// ErrRoomNotFound - 404.
	ErrRoomNotFound
	// ErrTenantNotFound - 404.
	ErrTenantNotFound
)

// Incident codes (103xxx).
const (
	// ErrIncidentNotFound - 404.
	ErrIncidentNotFound int = iota + 103000
	// ErrIncidentStatusInvalid - 400: unknown status literal.
	ErrIncidentStatusInvalid
)

// Contract and payment codes (104xxx).
const (
	// ErrContractNotFound - 404.
	ErrContractNotFound int = iota + 104000
	// ErrPaymentNotFound - 404.
	ErrPaymentNotFound
)

// Database codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: generic missing record.
	ErrRecordNotFound
	// ErrForeignKeyViolation - 400: referenced entity does not exist.
	ErrForeignKeyViolation
	// ErrTransaction - 500: atomic write rolled back.
	ErrTransaction
	// ErrDependencyUnavailable - 503: optional collaborator not provisioned.
	ErrDependencyUnavailable
)

// Migration codes (109xxx).
const (
	// ErrMigrationFailed - 500: migration failed.
	ErrMigrationFailed int = iota + 109000
	// ErrSeedFailed - 500: seeding failed.
	ErrSeedFailed
	// ErrConnectionFailed - 500: connection failed.
	ErrConnectionFailed
)
