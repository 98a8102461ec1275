// Package domain contains the core entities of the chart advisor: the
// recommendation request a user submits and the chart recommendation the
// language model produces for it. The types here are independent of any
// transport or provider.
package domain
