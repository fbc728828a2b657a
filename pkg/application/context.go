package application

import "context"

type contextKey string

const workIDKey contextKey = "workID"

// WithWorkID anota o contexto com o identificador da unidade de trabalho.
func WithWorkID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, workIDKey, id)
}

// WorkIDFromContext extrai o identificador da unidade de trabalho, se houver.
func WorkIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(workIDKey).(string)
	return id, ok
}
