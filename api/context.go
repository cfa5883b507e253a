package api

import (
	"context"
)

type keyType string

const fragmentKey keyType = "fragment"

// ctxWithFragment marks the request as asking for the list fragment only.
func ctxWithFragment(ctx context.Context) context.Context {
	return context.WithValue(ctx, fragmentKey, true)
}

// ctxIsFragment reports whether only the list fragment should be rendered.
func ctxIsFragment(ctx context.Context) bool {
	fragment, _ := ctx.Value(fragmentKey).(bool)
	return fragment
}
