// Package server runs the HTTP transport and the background workers under
// one signal-aware context and shuts them down together.
package server
