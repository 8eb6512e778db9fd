package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// EmailKey ключ для хранения email в контексте
	EmailKey contextKey = "email"
	// SubscriptionKey ключ для хранения уровня подписки в контексте
	SubscriptionKey contextKey = "subscription"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetEmail извлекает email из контекста запроса
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

// GetSubscription извлекает уровень подписки из контекста запроса
func GetSubscription(ctx context.Context) (string, bool) {
	subscription, ok := ctx.Value(SubscriptionKey).(string)
	return subscription, ok
}
