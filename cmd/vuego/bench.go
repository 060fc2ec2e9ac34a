package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vuego-dev/vuego/pkg/render"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

func benchCmd() *cobra.Command {
	var (
		iterations int
		width      int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run runtime micro-benchmarks",
		Long: `Run quick in-process benchmarks of the runtime core.

Measures node construction throughput and compares a full-tree diff
against the block-aware diff over the same shape.

Examples:
  vuego bench
  vuego bench --iterations=50000 --width=20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(iterations, width)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "Iterations per benchmark")
	cmd.Flags().IntVarP(&width, "width", "w", 10, "Children per tree")

	return cmd
}

func runBench(iterations, width int) error {
	if iterations <= 0 || width <= 0 {
		return fmt.Errorf("iterations and width must be positive")
	}

	printBanner()
	info("iterations=%d width=%d", iterations, width)
	fmt.Println()

	buildBlock := func(tick int) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.OpenBlock(false)
		kids := make([]*vdom.VNode, 0, width)
		for i := 0; i < width; i++ {
			flag := vdom.PatchFlag(0)
			if i%4 == 0 {
				flag = vdom.PatchText
			}
			kids = append(kids, pass.ElementVNode("span", nil,
				fmt.Sprintf("cell %d.%d", tick, i), flag, nil))
		}
		return pass.ElementBlock("div", nil, kids, 0, nil)
	}

	buildPlain := func(tick int) *vdom.VNode {
		kids := make([]any, 0, width)
		for i := 0; i < width; i++ {
			kids = append(kids, vdom.Element("span", nil, fmt.Sprintf("cell %d.%d", tick, i)))
		}
		return vdom.Element("div", nil, kids...)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		buildBlock(i)
	}
	elapsed := time.Since(start)
	success("construct (block): %s/op  %.0f nodes/s",
		elapsed/time.Duration(iterations),
		float64(iterations*(width+1))/elapsed.Seconds())

	renderer := render.NewRenderer(render.Config{})

	prevBlock := buildBlock(0)
	renderer.RenderToString(prevBlock)
	start = time.Now()
	for i := 1; i <= iterations; i++ {
		next := buildBlock(i)
		render.Diff(prevBlock, next)
		prevBlock = next
	}
	elapsed = time.Since(start)
	success("diff (block-aware): %s/op", elapsed/time.Duration(iterations))

	renderer.Reset()
	prevPlain := buildPlain(0)
	renderer.RenderToString(prevPlain)
	start = time.Now()
	for i := 1; i <= iterations; i++ {
		next := buildPlain(i)
		render.Diff(prevPlain, next)
		prevPlain = next
	}
	elapsed = time.Since(start)
	success("diff (full walk):   %s/op", elapsed/time.Duration(iterations))

	return nil
}
