// Package apperr 定義整個後台共用的錯誤分類
// resolver回傳給client的extensions.code一律來自這裡
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Unauthorized           Kind = "UNAUTHORIZED"              // 沒有session或角色不符
	AccessDenied           Kind = "ACCESS_DENIED"             // 已認證但不是資源擁有者
	ValidationFailed       Kind = "VALIDATION_FAILED"         // 輸入未通過宣告式驗證
	NotFound               Kind = "NOT_FOUND"                 // 資料不存在
	AlreadyExists          Kind = "ALREADY_EXISTS"            // 唯一鍵衝突
	InUse                  Kind = "IN_USE"                    // 外鍵參照，禁止刪除
	TemporarilyUnavailable Kind = "TEMPORARILY_UNAVAILABLE"   // 資料庫連線異常，可重試
	DatabaseOperationFail  Kind = "DATABASE_OPERATION_FAILED" // 未分類的儲存層錯誤
)

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // ValidationFailed 時的 field -> message
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 讓 errors.Is 可以用 Kind 比對
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation 帶欄位錯誤訊息的 ValidationFailed
func NewValidation(message string, fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: message, Fields: fields}
}

// KindOf 取出錯誤的分類，非 *Error 一律視為 DatabaseOperationFail
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return DatabaseOperationFail
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
