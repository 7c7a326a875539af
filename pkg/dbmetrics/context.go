package dbmetrics

import "context"

// ключ контекста для активного транзакционного исполнителя
type executorCtxKey struct{}

// WithExecutor кладет транзакционный исполнитель в контекст.
// Используется transaction manager'ами, чтобы репозитории внутри
// транзакции прозрачно работали через неё.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, tx)
}

// GetExecutor возвращает исполнитель из контекста, если там есть активная
// транзакция, иначе - переданный по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(TxExecutor)
	return ok
}
