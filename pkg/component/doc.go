// Package component provides a minimal container for graph nodes.
//
// A [Component] owns uniquely named nodes and tracks every edge connected
// through it, so that code generators can iterate ports, parameters and
// connections in a stable order:
//
//	c := component.New("counter")
//	_ = c.Add(
//	    node.NewPort("clk", types.Bit(), node.DirIn),
//	    node.NewPort("q", types.Bit(), node.DirOut),
//	    node.NewSignal("state", types.Bit()),
//	)
//	_, _ = c.Connect("q", "state")
//
// Connections follow the rules of [node.Connect]. Edges must be made through
// the component (not through the nodes directly) for [Component.Validate] to
// succeed.
package component
