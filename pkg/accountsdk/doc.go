// Package accountsdk provides the request/response types for the accountd
// HTTP API together with a small Go client for consumers.
//
// The handlers in internal/accounts/http share these types so the wire shape
// is defined exactly once.
package accountsdk
