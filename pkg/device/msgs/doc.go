// Package msgs defines the typed messages exchanged between a sensor
// link device and connected tooling. Every message travels in a Typed
// envelope carrying a type ID; the ID encodes the kind (command or
// event), a group, and whether it is a reply.
package msgs
