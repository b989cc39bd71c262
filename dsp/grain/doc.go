// Package grain provides the building blocks of a granular player.
//
// [Buffer] is a rolling stereo store that stages length changes until its
// write head wraps. A [Grain] reads randomized, enveloped windows back from
// it. [Manager] spreads the phases and volumes of the pool over a
// fractional active-grain count.
//
// None of the types are safe for concurrent use. They are meant to be owned
// by a single audio goroutine; Process and Write methods do not allocate.
package grain
