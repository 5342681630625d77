// Package http implements the HTTP transport layer of the portal.
//
// It wires the chi router: the GraphQL endpoint, uploads, the DaData proxy,
// health and metrics routes and the static front-end. Request tracing,
// access logging, session decoding, rate limiting and the page guard are
// middlewares in this package; everything else is delegated to the service
// layer.
package http
