// Package demos provides ready-made influence diagrams used by the CLI,
// the examples and the tests.
//
//   - oil-wildcatter: test, then drill, under uncertain oil content.
//   - observed-chain: one chance variable observed by one decision.
//   - weather: take an umbrella after reading a forecast.
//   - treatment: treat a patient after observing a symptom; compiles into
//     two cliques.
//
// Every builder returns a fresh diagram, so callers may mutate the result.
package demos
