// Package sim is the collision and movement core: a World of tile blocks, an
// Actor, and Step, which advances one frame in a fixed order. It is pure and
// single-threaded; nothing here logs or touches the clock.
package sim

// Params are the tunable movement constants. The zero value is not useful;
// start from DefaultParams.
type Params struct {
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	Accel        float64 `yaml:"accel"`
	BaseFriction float64 `yaml:"baseFriction"`
	BaseMaxSpeed float64 `yaml:"baseMaxSpeed"`

	IcyFriction    float64 `yaml:"icyFriction"`
	IcyMaxSpeed    float64 `yaml:"icyMaxSpeed"`
	GentleFriction float64 `yaml:"gentleFriction"`

	SlideFriction   float64 `yaml:"slideFriction"`
	SlideMaxSpeed   float64 `yaml:"slideMaxSpeed"`
	SlideAccel      float64 `yaml:"slideAccel"`
	RampLaunchBias  float64 `yaml:"rampLaunchBias"`
	WalkCycleDivide float64 `yaml:"walkCycleDivide"`

	ActorWidth  float64 `yaml:"actorWidth"`
	ActorHeight float64 `yaml:"actorHeight"`

	// NeighborhoodRadius is how many tiles around the actor's tile are
	// checked for collisions. Slope continuity needs at least 1.
	NeighborhoodRadius int `yaml:"neighborhoodRadius"`

	// DefaultSpawnX/Y are used when a level has no spawn marker.
	DefaultSpawnX float64 `yaml:"defaultSpawnX"`
	DefaultSpawnY float64 `yaml:"defaultSpawnY"`
}

// DefaultParams returns the stock movement tuning.
func DefaultParams() Params {
	return Params{
		Gravity:   0.3,
		JumpSpeed: 8,

		Accel:        0.3,
		BaseFriction: 0.9,
		BaseMaxSpeed: 5,

		IcyFriction:    0.99,
		IcyMaxSpeed:    7,
		GentleFriction: 0.99,

		SlideFriction:   0.98,
		SlideMaxSpeed:   20,
		SlideAccel:      0.3,
		RampLaunchBias:  1,
		WalkCycleDivide: 16,

		ActorWidth:  20,
		ActorHeight: 44,

		NeighborhoodRadius: 2,

		DefaultSpawnX: 0,
		DefaultSpawnY: 0,
	}
}

func (p Params) radius() int {
	if p.NeighborhoodRadius < 1 {
		return 1
	}
	return p.NeighborhoodRadius
}
