// Package hydraulics models the geometry and flow state of ventilation
// components: cross sections, volume flows and the velocities derived
// from them.
//
// Every state type validates its inputs before assigning anything, so a
// rejected call leaves the previous state intact. Derived quantities are
// recomputed inside each setter.
//
// [Bend] adds an outlet section and an angle to the upstream section.
// [Branch] additionally splits the flow between the branch and a
// downstream section and keeps
//
//	DownstreamFlow = UpstreamFlow - BranchFlow,  BranchFlow <= UpstreamFlow
//
// after every mutation.
package hydraulics
