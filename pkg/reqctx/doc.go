// Package reqctx carries request-scoped metadata through context.Context.
//
// The HTTP request-id middleware stores a RequestMeta for every request;
// services read it back to correlate log lines with a request:
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	logger.Info("inquiry delivered", "request_id", reqctx.RequestIDFromContext(ctx))
//
// Context keys are unexported so only this package can set them.
package reqctx
