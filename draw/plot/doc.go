// Package plot renders result charts for the circuit calculators as
// self-contained SVG documents.
//
// Four builders share one two-phase discipline: Add* calls accumulate curves,
// reference lines or bars and return the same builder for chaining, and
// Render turns the accumulated state into an SVG string without modifying it.
//
//   - ResponsePlot: log-frequency x axis, dB y axis, fixed declared ranges.
//   - WaveformPlot: time-domain curves, y axis symmetric about zero.
//   - TransferPlot: input/output curves, both axes symmetric about zero.
//   - BarPlot: categorical bars such as a harmonic spectrum.
//
// Curve points outside the y range are clamped to the plot edge rather than
// dropped; NaN points are skipped.
package plot
