package release_hold

import "context"

type HoldService interface {
	Release(ctx context.Context, token string, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
