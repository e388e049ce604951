package audit

import (
	"context"

	"github.com/weiawesome/wes-io-live/gif-service/pkg/log"
)

// Audit actions for gif-service.
const (
	ActionSearchFallback = "search.fallback"
)

// Field constants for audit entries.
const (
	FieldAction = "action"
	FieldQuery  = "query"
	FieldDetail = "detail"
)

// LogWithDetail emits an audit log with extra detail field.
func LogWithDetail(ctx context.Context, action string, query string, detail string, msg string) {
	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldLogType, log.LogTypeAudit).
		Str(FieldAction, action).
		Str(FieldQuery, query).
		Str(FieldDetail, detail).
		Msg(msg)
}
