// Package api handles incoming HTTP requests, request validation, and
// response formatting for the recommendation endpoint. It acts as an adapter
// between HTTP clients and the generation.Generator port, relaying the
// model's streamed output as it arrives.
package api
