package testutil

// Reference spectra of a single lined duct section, VDI 2081-1 worked
// example. Outgoing follows from the other three.
var (
	ReferenceIncoming    = [8]float64{92, 90, 88, 84, 79, 74, 67, 60}
	ReferenceGenerated   = [8]float64{58, 54, 49, 45, 41, 37, 34, 31}
	ReferenceAttenuation = [8]float64{6, 17, 34, 36, 38, 29, 19, 15}
	ReferenceOutgoing    = [8]float64{
		86.00687765494317, 73.05433314220045, 55.193310480660955, 49.76434862436485,
		44.01029995663981, 45.638920341433796, 48.16954289279533, 45.16954289279533,
	}
)

// Terminal outlet spectra used by the office room scenario.
var (
	OfficeDuctOutlet = [8]float64{
		51.051136242385965, 62.78693271550494, 64.78277976530185, 61.71697296333068,
		74.67300432076078, 80.67300024435974, 83.67300002734734, 77.673,
	}
	OfficeDiffuserOutlet = [8]float64{
		36.52547742025116, 48.02609134880121, 50.00900752065636, 47.00572176577775,
		60.00004173003829, 66.0, 69.0, 63.0,
	}
)

// Flat returns eight bands at the same level.
func Flat(level float64) [8]float64 {
	var out [8]float64
	for i := range out {
		out[i] = level
	}
	return out
}
