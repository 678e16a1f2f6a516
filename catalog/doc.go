// Package catalog provides the reference data the acoustic model looks up
// by key: sound absorption coefficients of building materials, natural
// attenuation of duct bends and typical fan sound power data.
//
// The datasets are embedded YAML documents decoded once on first use.
// [Materials], [Bends] and [Fans] each return a fresh repository seeded
// from that data, so callers may [Repository.Add] or [Repository.Remove]
// entries without affecting each other.
//
// Bend tables are bracketed by duct size. [Repository.LookupBySize]
// matches a bracket when from < size <= to.
package catalog
