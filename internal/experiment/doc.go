// Package experiment drives the example charts of an Ising-model study.
//
// A [Runner] walks the configured lattice sizes and temperatures, renders one
// heatmap per spin configuration, then renders one scatter plot per
// observable (heat capacity, magnetization):
//
//	r := experiment.NewRunner(cfg, renderer, logger)
//	if err := r.Run(); err != nil {
//		return err
//	}
//
// Work is sequential and the first failure ends the run.
package experiment
