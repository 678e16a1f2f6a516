// Package propagation connects acoustic items into an ordered flow path.
//
// A [Chain] feeds the outgoing spectrum of each item into the incoming
// spectrum of the next one. After every structural edit, and after any
// [Chain.RecalculateAll], each item after the first sees its predecessor's
// outgoing spectrum as incoming, clamped to the item's level limits.
// The first item's incoming spectrum is the external input and is never
// touched by the chain.
//
// The chain holds pointers only. Items stay owned by the caller and
// survive removal from the chain.
package propagation
