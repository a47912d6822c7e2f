// Package auth gates HTTP requests on the bearer tokens minted at login.
//
// The gate supports two policies: AllowAnonymous, which never blocks, and
// RequireRole, which admits only requests carrying a valid, unexpired token
// whose role matches. Every verification failure (missing header, malformed
// token, bad signature, expired, not yet valid) maps to 401; a verified
// token with the wrong role maps to 403.
//
// Auth is implemented as HTTP middleware, keeping it decoupled from handler
// logic. On success the middleware injects the token's subject and role into
// the request context for downstream handlers.
package auth
