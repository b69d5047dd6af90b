// Package core provides the road network Graph used by roadpath.
//
// Overview:
//
//   - Cities are vertices identified by a case-normalised name (upper case).
//   - Connections are weighted, directed edges with a non-negative integer
//     distance (kilometres by convention).
//   - A Graph carries two designated endpoints: the starting point and the
//     destination. Both are set during the build phase; the last write wins.
//
// Directedness:
//
//	The Graph is strictly directed. A two-way road is two connections, and
//	inserting both is the job of whoever populates the Graph (see package
//	input). Nothing in core mirrors edges on its own.
//
// Connection targets:
//
//	By default AddConnection registers an unknown target city implicitly, so
//	the solver never meets a dangling reference. Build with
//	WithStrictConnections() to reject unknown targets instead.
//
// Lifecycle:
//
//	Build (AddCity, AddConnection, SetStartingPoint, SetDestination), check
//	with Validate, then treat the Graph as read-only while solving.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddCity("Paris")
//	_ = g.AddCity("Lyon")
//	_ = g.AddConnection("paris", "LYON", 465)
//	g.SetStartingPoint("Paris")
//	g.SetDestination("Lyon")
//	if err := g.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package core
