// Package room predicts the sound pressure spectrum inside an enclosed
// room fed by one or more air terminals.
//
// The room is characterised by its equivalent absorption area A per
// octave band, aggregated from an inventory of [Absorber] values: finish
// parts built from catalogue materials ([Part], [Item]), objects with a
// known equivalent area ([FixedAbsorber]) or a measured reverberation
// time ([Reverberation]).
//
// Each [Terminal] contributes at the exposure distance d through the
// combined direct and reverberant field
//
//	Lp = Lw + 10*log10(Q/(4*pi*d²) + 4/A)
//
// where the directivity factor Q depends on where the terminal sits
// ([Location]), its mounting angle, its gross discharge area and the band
// frequency. An ambient source may be given both as a sound power
// spectrum, converted to a diffuse-field pressure, and as a pressure
// spectrum added directly.
//
// A [Model] owns the inventory and recomputes the pressure spectrum and
// its energy total after every change. Terminals and absorbers are held
// by reference; call [Model.Recalculate] after editing one from outside.
package room
