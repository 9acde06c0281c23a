package expr

import "sync"

// Container gathers the expressions of a whole scene and caches their
// combined analysis until more are added.
type Container struct {
	mu       sync.Mutex
	nodes    []*Node
	analyzed bool

	references      []string
	calledFunctions []string
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Add appends nodes, skipping nils, and invalidates the cached analysis.
func (c *Container) Add(nodes ...*Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.analyzed = false
	for _, n := range nodes {
		if n != nil {
			c.nodes = append(c.nodes, n)
		}
	}
}

// Len is the number of collected expressions.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nodes)
}

// analyze refreshes the cached results. The caller holds mu.
func (c *Container) analyze() {
	if c.analyzed {
		return
	}
	c.references, c.calledFunctions = analyze(c.nodes...)
	c.analyzed = true
}

// References returns every variable referenced by any collected expression.
func (c *Container) References() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyze()
	return c.references
}

// CalledFunctions returns every function called by any collected expression.
func (c *Container) CalledFunctions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyze()
	return c.calledFunctions
}
