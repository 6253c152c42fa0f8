package planet

// Kind is the closed set of planet categories. Kind-specific behavior lives
// in the Profile lookup rather than in type hierarchies.
type Kind string

const (
	KindRocky    Kind = "rocky"
	KindIcy      Kind = "icy"
	KindGasGiant Kind = "gas-giant"
	KindComet    Kind = "comet"
)

// Profile carries the parameters that actually differ between planet kinds.
type Profile struct {
	DensityMin    float64 // kg/m^3
	DensityMax    float64 // kg/m^3
	MaxSatellites int
	RingChance    float64
	// FlatSurface marks kinds with no solid relief (gas giants, small
	// sublimating bodies); their max elevation is always zero.
	FlatSurface bool
}

var kindProfiles = map[Kind]Profile{
	KindRocky:    {DensityMin: 3000, DensityMax: 5500, MaxSatellites: 3, RingChance: 0.02},
	KindIcy:      {DensityMin: 1200, DensityMax: 3000, MaxSatellites: 2, RingChance: 0.05},
	KindGasGiant: {DensityMin: 600, DensityMax: 1800, MaxSatellites: 20, RingChance: 0.5, FlatSurface: true},
	KindComet:    {DensityMin: 400, DensityMax: 900, FlatSurface: true},
}

// Profile returns the parameter set for the kind. Unknown kinds fall back to
// the rocky profile.
func (k Kind) Profile() Profile {
	if p, ok := kindProfiles[k]; ok {
		return p
	}
	return kindProfiles[KindRocky]
}

// Valid reports whether k names a known planet kind.
func (k Kind) Valid() bool {
	_, ok := kindProfiles[k]
	return ok
}
