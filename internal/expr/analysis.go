package expr

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey renders a traversal as canonical text, e.g. `cell_i` or `a.b[0]`.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Variables returns the free variable names referenced by the expression,
// deduplicated and sorted.
func (n *Node) Variables() []string {
	refs, _ := analyze(n)
	return refs
}

// Functions returns the function names called by the expression, deduplicated
// and sorted.
func (n *Node) Functions() []string {
	_, funcs := analyze(n)
	return funcs
}

// analyze collects variable traversals and called functions across nodes.
func analyze(nodes ...*Node) ([]string, []string) {
	refs := make(map[string]struct{})
	funcs := make(map[string]struct{})

	for _, n := range nodes {
		if n == nil || n.expr == nil {
			continue
		}
		for _, t := range n.expr.Variables() {
			refs[TraversalKey(t)] = struct{}{}
		}
		// Variables() does not report calls, so walk the syntax tree for them.
		if se, ok := n.expr.(hclsyntax.Expression); ok {
			hclsyntax.VisitAll(se, func(node hclsyntax.Node) hcl.Diagnostics {
				if call, ok := node.(*hclsyntax.FunctionCallExpr); ok {
					funcs[call.Name] = struct{}{}
				}
				return nil
			})
		}
	}
	return sortedKeys(refs), sortedKeys(funcs)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
