package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request parameters",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid or missing session",
	ErrTooManyRequests: "too many requests, try again later",
	ErrForbidden:       "insufficient permissions",
	ErrParse:           "malformed number or date",

	// 用户相关错误码
	ErrUserNotFound:          "user not found",
	ErrUserAlreadyExist:      "email already registered",
	ErrUserPasswordIncorrect: "incorrect credentials",

	// 物业相关错误码
	ErrPropertyNotFound: "property not found",
	ErrPropertyHasRooms: "property still has rooms",
	ErrRoomNotFound:     "room not found",
	ErrTenantNotFound:   "tenant not found",

	// 工单相关错误码
	ErrIncidentNotFound:      "incident not found",
	ErrIncidentStatusInvalid: "invalid incident status",

	// 合同与付款错误码
	ErrContractNotFound: "contract not found",
	ErrPaymentNotFound:  "payment not found",

	// 数据库相关错误码
	ErrDatabase:              "database error",
	ErrRecordNotFound:        "record not found",
	ErrForeignKeyViolation:   "referenced record does not exist",
	ErrTransaction:           "transaction failed, no changes applied",
	ErrDependencyUnavailable: "dependency unavailable",

	// 迁移相关错误码
	ErrMigrationFailed:  "migration failed",
	ErrSeedFailed:       "seeding failed",
	ErrConnectionFailed: "connection failed",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,
	ErrParse:           StatusUnprocessableEntity,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 物业相关错误码
	ErrPropertyNotFound: StatusNotFound,
	ErrPropertyHasRooms: StatusConflict,
	ErrRoomNotFound:     StatusNotFound,
	ErrTenantNotFound:   StatusNotFound,

	// 工单相关错误码
	ErrIncidentNotFound:      StatusNotFound,
	ErrIncidentStatusInvalid: StatusBadRequest,

	// 合同与付款错误码
	ErrContractNotFound: StatusNotFound,
	ErrPaymentNotFound:  StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:              StatusInternalServerError,
	ErrRecordNotFound:        StatusNotFound,
	ErrForeignKeyViolation:   StatusBadRequest,
	ErrTransaction:           StatusInternalServerError,
	ErrDependencyUnavailable: StatusServiceUnavailable,

	// 迁移相关错误码
	ErrMigrationFailed:  StatusInternalServerError,
	ErrSeedFailed:       StatusInternalServerError,
	ErrConnectionFailed: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
