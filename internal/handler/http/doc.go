// Package http implements the HTTP transport layer of notion-to-github.
//
// It exposes the JSON API (POST /convert, POST /publish, POST /preview,
// GET /version) and a server-rendered form (GET /, POST /ui/convert,
// POST /ui/publish) that walks a user through the convert-then-upload
// workflow. Request tracing, access logging, response compression, panic
// recovery and request timeouts are applied here before requests reach the
// service layer.
package http
