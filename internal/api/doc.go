// Package api is the HTTP transport for the question and answer operations.
//
// Handlers decode and validate wire input, call the functions in package
// handler, and project their errors onto status codes: BadRequest becomes
// 400 with the handler's message, everything else 500 with a fixed message.
// Routing is done with chi by the server in cmd/server.
package api
