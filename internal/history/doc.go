// Package history keeps a local log of predictions made from this client.
//
// The server aggregates global prediction stats for the dashboard; this
// store answers the narrower question "what did I predict recently" without
// a network round trip, in a single SQLite file under the user's data dir.
package history
