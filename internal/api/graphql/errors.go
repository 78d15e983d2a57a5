package graphql

import (
	"errors"

	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
)

// resolverError 讓graphql-go把錯誤分類放進extensions
// client看到 {errors: [{message, extensions: {code, fields}}]}
type resolverError struct {
	appErr *apperr.Error
}

func (e *resolverError) Error() string {
	// DatabaseOperationFail對外只給opaque訊息，細節留在server log
	if e.appErr.Kind == apperr.DatabaseOperationFail {
		return "internal error"
	}
	return e.appErr.Message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.appErr.Kind),
	}
	if len(e.appErr.Fields) > 0 {
		fields := map[string]interface{}{}
		for k, v := range e.appErr.Fields {
			fields[k] = v
		}
		ext["fields"] = fields
	}
	return ext
}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return &resolverError{appErr: appErr}
	}
	return &resolverError{appErr: apperr.Wrap(apperr.DatabaseOperationFail, "unexpected error", err)}
}
