package physics

const (
	GravityRef     = 4000000.0 // gravity of a body with RefRadius
	RefRadius      = 30.0
	ThrustForce    = 10.0
	FuelRefBand    = 20.0 // fuel at which craft mass reaches 1.0
	EmptyMass      = 0.5  // mass with an empty tank
	RotationSpeed  = 90.0 // degrees per second
	ProjectHorizon = 5.0  // seconds
	ProjectSteps   = 300
	ProjectStride  = 15 // path points between drawn dots
)
