package component

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hwgraph/pkg/errors"
	"github.com/matzehuels/hwgraph/pkg/node"
)

// Component owns a set of uniquely named nodes and the edges between them.
//
// The zero value is not usable - use New. Component is not safe for
// concurrent use without external synchronization.
type Component struct {
	name   string
	nodes  []node.Node
	byName map[string]node.Node
	edges  []*node.Edge
	logger *log.Logger
}

// Option configures a Component.
type Option func(*Component)

// WithLogger sets the logger used for debug output. By default nothing is
// logged.
func WithLogger(l *log.Logger) Option {
	return func(c *Component) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty component.
func New(name string, opts ...Option) *Component {
	c := &Component{
		name:   name,
		byName: make(map[string]node.Node),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// Add adds nodes to the component in order. Ports, signals, parameters and
// expressions need HDL-safe identifiers; literal names only need to be
// printable. Nodes that already carry edges are rejected, since those edges
// would not be tracked by the component. The shared boolean literals are
// stored as copies; look them up by name afterwards.
//
// Add stops at the first failing node; nodes before it remain added.
func (c *Component) Add(nodes ...node.Node) error {
	for _, n := range nodes {
		if err := c.add(n); err != nil {
			return err
		}
	}
	return nil
}

func (c *Component) add(n node.Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot add nil node to %q", c.name)
	}
	if l, ok := n.(*node.Literal); ok && l.Shared() {
		n = l.Copy()
	}
	validate := errors.ValidateIdentifier
	if n.Kind() == node.KindLiteral {
		validate = errors.ValidateName
	}
	if err := validate(n.Name()); err != nil {
		return err
	}
	if _, exists := c.byName[n.Name()]; exists {
		return errors.New(errors.ErrCodeDuplicate, "component %q already has a node named %q", c.name, n.Name())
	}
	if len(n.Sources()) > 0 || len(n.Sinks()) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "node %q is already connected", n.Name())
	}
	c.nodes = append(c.nodes, n)
	c.byName[n.Name()] = n
	c.logger.Debug("added node", "component", c.name, "kind", n.Kind(), "name", n.Name(), "type", n.Type())
	return nil
}

// Node returns the node with the given name.
func (c *Component) Node(name string) (node.Node, bool) {
	n, ok := c.byName[name]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (c *Component) Nodes() []node.Node { return slices.Clone(c.nodes) }

// NodesOfKind returns the nodes of one kind in insertion order.
func (c *Component) NodesOfKind(k node.Kind) []node.Node {
	var out []node.Node
	for _, n := range c.nodes {
		if n.Kind() == k {
			out = append(out, n)
		}
	}
	return out
}

// Ports returns the ports in insertion order.
func (c *Component) Ports() []*node.Port {
	var out []*node.Port
	for _, n := range c.nodes {
		if p, ok := n.(*node.Port); ok {
			out = append(out, p)
		}
	}
	return out
}

// Parameters returns the parameters in insertion order.
func (c *Component) Parameters() []*node.Parameter {
	var out []*node.Parameter
	for _, n := range c.nodes {
		if p, ok := n.(*node.Parameter); ok {
			out = append(out, p)
		}
	}
	return out
}

// Edges returns the edges in the order they were connected.
func (c *Component) Edges() []*node.Edge { return slices.Clone(c.edges) }

// NodeCount returns the number of nodes.
func (c *Component) NodeCount() int { return len(c.nodes) }

// EdgeCount returns the number of edges.
func (c *Component) EdgeCount() int { return len(c.edges) }

// Connect makes the node named src drive the node named dst.
// Returns NOT_FOUND for unknown names and otherwise the errors of
// [node.Connect]; on error nothing changes.
func (c *Component) Connect(dst, src string) (*node.Edge, error) {
	d, ok := c.byName[dst]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "component %q has no node %q", c.name, dst)
	}
	s, ok := c.byName[src]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "component %q has no node %q", c.name, src)
	}
	e, err := node.Connect(d, s)
	if err != nil {
		c.logger.Debug("connection refused", "component", c.name, "src", src, "dst", dst, "err", err)
		return nil, err
	}
	c.edges = append(c.edges, e)
	c.logger.Debug("connected", "component", c.name, "edge", e.String(), "id", e.ID())
	return e, nil
}

// Disconnect detaches e from its endpoints and forgets it. It reports
// whether the component held the edge.
func (c *Component) Disconnect(e *node.Edge) bool {
	i := slices.Index(c.edges, e)
	if i < 0 {
		return false
	}
	node.Disconnect(e)
	c.edges = slices.Delete(c.edges, i, i+1)
	c.logger.Debug("disconnected", "component", c.name, "edge", e.String())
	return true
}

// Remove deletes the named node after disconnecting every edge that touches
// it.
func (c *Component) Remove(name string) error {
	n, ok := c.byName[name]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "component %q has no node %q", c.name, name)
	}
	for _, e := range slices.Concat(n.Sources(), n.Sinks()) {
		c.Disconnect(e)
	}
	c.nodes = slices.DeleteFunc(c.nodes, func(m node.Node) bool { return m == n })
	delete(c.byName, name)
	c.logger.Debug("removed node", "component", c.name, "name", name)
	return nil
}

// Copy returns a new component with copies of every node and the same
// connections, recreated between the copies.
func (c *Component) Copy(name string) (*Component, error) {
	out := New(name, WithLogger(c.logger))
	for _, n := range c.nodes {
		if err := out.add(n.Copy()); err != nil {
			return nil, err
		}
	}
	for _, e := range c.edges {
		if _, err := out.Connect(e.Dst().Name(), e.Src().Name()); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "copy %q", c.name)
		}
	}
	return out, nil
}

// Unconnected returns the signals and non-input ports that nothing drives.
// Input ports are driven from outside the component and are never reported.
func (c *Component) Unconnected() []node.Node {
	var out []node.Node
	for _, n := range c.nodes {
		switch v := n.(type) {
		case *node.Port:
			if v.Dir() != node.DirIn && len(v.Sources()) == 0 {
				out = append(out, v)
			}
		case *node.Signal:
			if len(v.Sources()) == 0 {
				out = append(out, v)
			}
		}
	}
	return out
}

// Validate checks that every edge is registered with both endpoints, that
// both endpoints belong to this component, and that no node has more than
// one input. A failure indicates edges were added or removed behind the
// component's back.
func (c *Component) Validate() error {
	for _, e := range c.edges {
		src, dst := e.Src(), e.Dst()
		if src == nil || dst == nil {
			return errors.New(errors.ErrCodeInvalidInput, "edge %s has a missing endpoint", e.ID())
		}
		if c.byName[src.Name()] != src || c.byName[dst.Name()] != dst {
			return errors.New(errors.ErrCodeNotFound, "edge %s references a node outside %q", e, c.name)
		}
		if !slices.Contains(src.Sinks(), e) {
			return errors.New(errors.ErrCodeInvalidInput, "edge %s is not registered with its source", e)
		}
		if !slices.Contains(dst.Sources(), e) {
			return errors.New(errors.ErrCodeInvalidInput, "edge %s is not registered with its destination", e)
		}
	}
	for _, n := range c.nodes {
		if len(n.Sources()) > 1 {
			return errors.New(errors.ErrCodeInvalidInput, "node %q has %d inputs", n.Name(), len(n.Sources()))
		}
		for _, e := range slices.Concat(n.Sources(), n.Sinks()) {
			if !slices.Contains(c.edges, e) {
				return errors.New(errors.ErrCodeInvalidInput, "node %q holds untracked edge %s", n.Name(), e)
			}
		}
	}
	return nil
}
