// Package converters provides two-way adapters between the module's
// core.Graph and gonum's directed graphs, so pipelines can borrow
// gonum's analytics (components, topology, centrality) without giving
// up the deterministic core primitive.
//
// Mapping
//
//	ToGonum assigns gonum node IDs 0..n-1 following the canonical
//	vertex order of the source graph, so the mapping itself is
//	deterministic and round-trips losslessly through FromGonum.
//
// Usage
//
//	dg, index, err := converters.ToGonum(g)
//	sccs := topo.TarjanSCC(dg)
//	back, err := converters.FromGonum(dg, converters.Invert(index))
package converters
