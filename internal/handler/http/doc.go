// Package http implements the HTTP transport layer of the customer service.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API under /api/customers and the /actuator endpoints. Request tracing,
// access logging, response compression, and the bearer-token boundary are
// handled in this package before requests are delegated to the service layer.
package http
