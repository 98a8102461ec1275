// Package testutils provides HTTP testing helpers shared by the server and
// client tests: test servers with automatic cleanup, JSON request execution
// and error-body assertions.
package testutils
