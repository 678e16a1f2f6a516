// Package component binds a hydraulic state to an acoustic item.
//
// A [Component] owns a [hydraulics.State], a [signal.Item] and two
// spectrum producers: a [GenerationFunc] for the component's own noise
// and an [AttenuationFunc] for its insertion loss. Whenever the state,
// material or producers change, both producers run again and the item's
// generated and attenuation spectra are replaced.
//
// The regression models behind real producers (duct self-noise, fan
// spectra, damper blade curves) live outside this package; any function
// with the right signature plugs in. Built-in producers cover fixed
// spectra and the catalog bend attenuation tables.
//
// A component does not know its neighbours. After changing a component
// that sits in a propagation chain, call the chain's RecalculateAll.
package component
