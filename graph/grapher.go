// Package graph turns analyzed programs into Graphviz graphs: the
// program's syntax tree, with the final abstract memory attached as a
// result cluster.
package graph

import (
	"fmt"

	L "github.com/cs-au-dk/absign/analysis/lattice"
	"github.com/cs-au-dk/absign/lang"
	"github.com/cs-au-dk/absign/utils/dot"
)

type grapher struct {
	nodes []*dot.DotNode
	edges []*dot.DotEdge
	next  int
}

func (g *grapher) node(label string) *dot.DotNode {
	n := &dot.DotNode{
		ID: fmt.Sprintf("n%d", g.next),
		Attrs: dot.DotAttrs{
			"label": label,
		},
	}
	g.next++
	g.nodes = append(g.nodes, n)
	return n
}

func (g *grapher) edge(from, to *dot.DotNode, label string) {
	attrs := dot.DotAttrs{}
	if label != "" {
		attrs["label"] = label
	}
	g.edges = append(g.edges, &dot.DotEdge{From: from, To: to, Attrs: attrs})
}

func (g *grapher) expression(e lang.Expression) *dot.DotNode {
	switch e := e.(type) {
	case lang.Number:
		return g.node(e.String())
	case lang.Variable:
		return g.node(e.Name)
	case lang.Add:
		n := g.node("+")
		g.edge(n, g.expression(e.Left), "")
		g.edge(n, g.expression(e.Right), "")
		return n
	case lang.Equal:
		n := g.node("==")
		g.edge(n, g.expression(e.Left), "")
		g.edge(n, g.expression(e.Right), "")
		return n
	case lang.Less:
		n := g.node("<")
		g.edge(n, g.expression(e.Left), "")
		g.edge(n, g.expression(e.Right), "")
		return n
	case lang.Not:
		n := g.node("!")
		g.edge(n, g.expression(e.Operand), "")
		return n
	default:
		panic(fmt.Errorf("invalid pattern match: %v %T", e, e))
	}
}

func (g *grapher) statement(s lang.Statement) *dot.DotNode {
	switch s := s.(type) {
	case lang.Read:
		return g.node("read " + s.Name)
	case lang.Write:
		n := g.node("write")
		g.edge(n, g.expression(s.Expr), "")
		return n
	case lang.Assign:
		n := g.node(s.Name + " :=")
		g.edge(n, g.expression(s.Expr), "")
		return n
	case lang.If:
		n := g.node("if")
		g.edge(n, g.expression(s.Cond), "cond")
		g.edge(n, g.statement(s.Then), "then")
		g.edge(n, g.statement(s.Else), "else")
		return n
	case lang.While:
		n := g.node("while")
		g.edge(n, g.expression(s.Cond), "cond")
		g.edge(n, g.statement(s.Body), "body")
		return n
	case lang.Seq:
		n := g.node(";")
		g.edge(n, g.statement(s.First), "")
		g.edge(n, g.statement(s.Second), "")
		return n
	default:
		panic(fmt.Errorf("invalid pattern match: %v %T", s, s))
	}
}

// ASTGraph builds a dot graph of prog's syntax tree. The final
// abstract memory, if non-empty, is rendered as a cluster of one node
// per variable binding.
func ASTGraph(title string, prog lang.Statement, result L.Memory) *dot.DotGraph {
	g := &grapher{}
	g.statement(prog)

	graph := &dot.DotGraph{
		Title:   title,
		Nodes:   g.nodes,
		Edges:   g.edges,
		Options: map[string]string{},
	}

	if result.Size() > 0 {
		cluster := dot.NewDotCluster("result")
		cluster.Attrs["label"] = "analysis result"
		cluster.Attrs["bgcolor"] = "lavender"
		for _, x := range result.Keys() {
			cluster.Nodes = append(cluster.Nodes, &dot.DotNode{
				ID: "result_" + x,
				Attrs: dot.DotAttrs{
					"label":     fmt.Sprintf("%s ↦ %s", x, result.Get(x).Symbol()),
					"fillcolor": "lightyellow",
				},
			})
		}
		graph.Clusters = append(graph.Clusters, cluster)
	}

	return graph
}
