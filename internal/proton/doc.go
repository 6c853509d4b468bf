// Package proton implements the charged-particle transport model:
// relativistic kinematics, Bethe-Bloch stopping power, a CSDA range
// integrator, Highland multiple scattering and the Bragg curve
// generator.
//
// Two stopping-power parameterizations coexist on purpose:
//
//   - [StoppingPowerMass] is the full Bethe-Bloch form behind the
//     standalone stopping-power curve.
//   - a reduced Bethe-Bloch form (same 1/beta^2 prefactor, Wmax and
//     shell terms dropped, coarse per-material constants) drives the
//     depth-stepping integrators ([CSDARange], [BraggCurve]), whose
//     absolute scale is corrected against [TargetRange] afterwards.
//
// The reduced form keeps the 1/beta^2 prefactor: dE/dx rises as the
// proton slows, placing the Bragg maximum at the end of range rather
// than at the entrance.
//
// Every integration loop is bounded by a depth safety cap, so all
// computations terminate even for degenerate material parameters.
// Nothing in the package holds state between calls; independent curve
// computations can run concurrently.
package proton
