// Package services provides typed wrappers over the catalog backend's REST
// API. Every service shares a single Client that attaches the stored bearer
// credential, enforces a request rate limit, and normalizes failures into
// transport errors (wrapping shared.ErrNetwork) or HTTPError values carrying
// the response status and server message.
package services
