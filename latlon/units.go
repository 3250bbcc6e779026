package latlon

const (
	// R is the mean Earth radius in metres.
	R = 6371e3

	metresPerNm = 1852.0

	// EarthRadiusNm is R in nautical miles.
	EarthRadiusNm = R / metresPerNm

	NmPerDegree    = 60.0
	MilesPerNm     = 1.1508
	KmPerMile      = 1.60934
	SecondsPerHour = 3600.0
)

func MilesToNm(mi float64) float64 { return mi / MilesPerNm }

func NmToMiles(nm float64) float64 { return nm * MilesPerNm }

func MilesToKm(mi float64) float64 { return mi * KmPerMile }

func KmToMiles(km float64) float64 { return km / KmPerMile }

// NmToDegrees converts a distance to degrees of arc, one minute per mile.
func NmToDegrees(nm float64) float64 { return nm / NmPerDegree }

func DegreesToNm(deg float64) float64 { return deg * NmPerDegree }
