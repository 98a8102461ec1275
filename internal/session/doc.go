// Package session holds the state behind an interactive recommendation form:
// the session-scoped credential, the in-flight flag, and the last
// recommendation or error. A Controller gates every submission on valid input
// and a stored credential before it reaches the network.
package session
