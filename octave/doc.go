// Package octave provides the fixed eight-band octave spectrum used across
// the propagation model, together with the energy-domain (decibel)
// arithmetic every aggregation relies on.
//
// A [Spectrum] holds one level per nominal octave band:
//
//	63, 125, 250, 500, 1000, 2000, 4000, 8000 Hz
//
// Levels are in dB. By convention 0 dB means "no signal" rather than a
// physical 0 dB level, so [LogAdd] treats a zero operand as absent:
//
//	LogAdd(0, 0) = 0
//	LogAdd(x, 0) = LogAdd(0, x) = x
//	LogAdd(a, b) = 10*log10(10^(a/10) + 10^(b/10))
//
// Decibel values describe independent energy sources and must never be
// summed arithmetically. [Spectrum.Add] exists for non-decibel band data
// such as equivalent absorption areas in m².
//
// The package also carries the IEC 61672 A and C frequency weightings,
// evaluated at the octave centre frequencies from the analog prototype:
//
//	s := octave.Spectrum{51, 63, 65, 62, 75, 81, 84, 78}
//	fmt.Printf("%.1f dB(A)\n", s.WeightedTotal(octave.WeightingA))
package octave
