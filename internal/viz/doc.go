// Package viz provides the surfaces a chart is shown on.
//
//   - [FileDisplay]: writes the figure as an image and opens it in the system viewer
//   - [TermDisplay]: prints a terminal preview (lipgloss cells for heatmaps,
//     asciigraph curves for series)
//   - [Multi]: shows a figure on several surfaces in order
//
// Terminal colors come from a [Theme]; see [ThemeNames] for the built-in ones.
package viz
