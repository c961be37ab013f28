// Package domain contains the core business entities of the subway
// favorite service: members, stations, and the favorites that bind them.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
