// Package remote feeds named values from a socket.io server into the world.
//
// The client listens for one event. Each payload is either a {name, value}
// object, a flat object of name to value pairs, or a list of either. Values
// are numbers, bools or numeric strings; they reach expressions through a
// world.InboxSource.
package remote
