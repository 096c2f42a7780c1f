// Package api handles incoming HTTP requests, request validation and
// response formatting. It translates multipart or JSON form submissions
// into service.MemoFicheService calls and maps the resulting errors to
// HTTP status codes and French user-facing messages.
package api
