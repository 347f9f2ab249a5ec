// Package api contains the HTTP handlers, request/response models, and the
// error-to-status mapping for the public JSON API. Handlers parse and
// validate payload shape, delegate to the service layer, and translate typed
// errors into HTTP responses; no store error crosses the transport boundary
// untranslated.
package api
