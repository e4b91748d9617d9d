// Package http implements the REST transport of the account service.
//
// It exposes route wiring, request handlers and middleware. Request tracing
// and access logging are handled here before requests are delegated to the
// service layer.
package http
