// Package chart builds heatmap and scatter figures for Ising-model output.
//
// Figures are gonum/plot plots plus the data they were drawn from:
//
//   - [NewHeatmap]: a spin configuration as a two-color heatmap
//   - [NewScatter]: observable series against temperature
//   - [Renderer]: builds a figure and hands it to a [Display]
//
// A [Display] decides what "showing" means: writing an image and opening a
// viewer, printing a terminal preview, or recording figures in tests.
//
// # Example
//
//	r := chart.NewRenderer(viz.NewFileDisplay("charts", "png"), chart.DefaultOptions())
//	m, _ := lattice.ReadMatrix("config_L=8_T=2.26.txt")
//	_ = r.Heatmap(m, "8", "2.26")
package chart
