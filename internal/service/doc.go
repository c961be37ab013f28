// Package service contains the application use cases: resolving an
// authenticated identity from a bearer token, managing a member's
// favorite routes, and the member account lifecycle. Services receive
// their store collaborators through constructor injection and depend
// only on the interfaces in internal/store, never on concrete
// infrastructure.
package service
