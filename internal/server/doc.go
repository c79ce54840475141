// Package server runs the notion-to-github HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
