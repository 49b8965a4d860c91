// Package api exposes device classification over HTTP.
//
// New builds a chi router that tags each /v1 request with a request ID,
// reads screen metrics from Client Hints and classifies the caller with a
// platform.Classifier. Responses use a JSON envelope:
//
//	{"data": {...}}
//	{"error": {"code": "validation_failed", "message": "...", "details": {...}}}
//
// POST /v1/classify classifies an arbitrary user agent and lets the caller
// override the screen metrics, which is handy for debugging custom rules.
package api
