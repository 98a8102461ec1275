// Package client calls the recommendation proxy over HTTP. It sends one
// request, drains the streamed body and returns a validated
// domain.Recommendation. It never retries and keeps no state between calls.
package client
