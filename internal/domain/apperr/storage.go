package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgres SQLSTATE -> Kind 對照表，集中一處，不在各resolver重複switch
var sqlstateKinds = map[string]Kind{
	"23505": AlreadyExists, // unique_violation
	"23503": InUse,         // foreign_key_violation
	"23514": ValidationFailed, // check_violation
	"40001": TemporarilyUnavailable, // serialization_failure
	"40P01": TemporarilyUnavailable, // deadlock_detected
	"53300": TemporarilyUnavailable, // too_many_connections
	"57P03": TemporarilyUnavailable, // cannot_connect_now
}

// FromStorage 把儲存層錯誤映射成領域錯誤
// 已經是 *Error 的直接穿透，未知的code落到 DatabaseOperationFail
func FromStorage(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(NotFound, message, err)
	}
	// gorm開啟TranslateError時部分driver錯誤會被翻譯
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Wrap(AlreadyExists, message, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return Wrap(InUse, message, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := sqlstateKinds[pgErr.Code]; ok {
			return Wrap(kind, message, err)
		}
		// class 08 connection exception
		if strings.HasPrefix(pgErr.Code, "08") {
			return Wrap(TemporarilyUnavailable, message, err)
		}
	}

	return Wrap(DatabaseOperationFail, message, err)
}
