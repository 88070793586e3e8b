package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/hwgraph/pkg/component"
	"github.com/matzehuels/hwgraph/pkg/node"
	"github.com/matzehuels/hwgraph/pkg/render/nodelink"
	"github.com/matzehuels/hwgraph/pkg/types"
)

func ExampleToDOT() {
	c := component.New("buf")
	_ = c.Add(
		node.NewPort("a", types.Bit(), node.DirIn),
		node.NewPort("y", types.Bit(), node.DirOut),
	)
	_, _ = c.Connect("y", "a")

	fmt.Print(nodelink.ToDOT(c, nodelink.Options{}))
	// Output:
	// digraph "buf" {
	//   rankdir=LR;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   ranksep=0.6;
	//   nodesep=0.3;
	//
	//   "a" [label="a", fillcolor=lightblue];
	//   "y" [label="y", fillcolor=palegreen];
	//
	//   "a" -> "y";
	// }
}

func ExampleRenderSVG() {
	c := component.New("wire")
	_ = c.Add(node.NewSignal("s", types.Bit()), node.NewPort("o", types.Bit(), node.DirOut))
	_, _ = c.Connect("o", "s")

	svg, err := nodelink.RenderSVG(nodelink.ToDOT(c, nodelink.Options{}))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Generated SVG (%d bytes)\n", len(svg))
	// Output varies based on Graphviz installation
}
