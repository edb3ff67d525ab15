package logging

import "context"

type fieldsKey struct{}

// ContextWith returns a copy of ctx carrying key–value pairs that every
// Logger adds to records logged with that context. Pairs accumulate across
// nested calls.
//
//	ctx = logging.ContextWith(ctx, "request_id", id)
//	log.Warn(ctx, "backend rejected request", "status", 500)
func ContextWith(ctx context.Context, args ...any) context.Context {
	prev := fieldsFrom(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

// withContextFields puts the context pairs ahead of the call-site args.
func withContextFields(ctx context.Context, args []any) []any {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return args
	}
	return append(fields[:len(fields):len(fields)], args...)
}
