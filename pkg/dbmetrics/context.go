package dbmetrics

import "context"

type ctxKey struct{}

// txKey ключ, под которым transaction manager кладет активную транзакцию в контекст
var txKey = ctxKey{}

// ContextWithTx кладет активную транзакцию в контекст
// Используется transaction manager-ами, репозитории достают её через GetExecutor
func ContextWithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает executor из контекста, если там есть активная транзакция,
// иначе возвращает fallback (обычное соединение репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли текущий запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
