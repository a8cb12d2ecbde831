// Package calc wires the circuit packages into the two calculators served by
// the command line tool and the browser bridge: a Sallen-Key active filter
// designer and an op-amp clipping stage.
package calc
