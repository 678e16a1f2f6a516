// Package signal holds the acoustic state every ventilation component
// carries: an [Item] with four octave spectra.
//
//   - incoming: sound power arriving from upstream
//   - generated: the component's own noise
//   - attenuation: the component's insertion loss
//   - outgoing: derived, never set directly
//
// For every band
//
//	outgoing = LogAdd(max(incoming - attenuation, Min), generated)
//
// Incoming levels are clamped into [Background, Max] before use, which
// keeps the model away from silent and saturated inputs. Every setter
// validates first and recomputes the outgoing spectrum before returning,
// so an Item is never observed in a stale state.
package signal
