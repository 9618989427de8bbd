// Package apicodec provides the key-value encoding layer of a raw
// key-value store: several coexisting on-disk wire formats behind one
// version-agnostic interface.
//
// A store selects its API version once at startup and obtains the matching
// codec through [New]; all encode and decode calls are then pure functions
// over byte buffers with no per-call version dispatch.
//
// See the [github.com/rawkv/apicodec/marshaller] package for typed value
// marshalling layered on top of a version codec.
package apicodec
