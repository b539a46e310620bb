package swarm

// Params tunes a Scene. DefaultParams reproduces the reference animation;
// front ends override the size-dependent fields.
type Params struct {
	// ParticleCount is the number of particles in every generation.
	ParticleCount int
	// HeartScale multiplies the unit heart curve (about 32x30 units).
	HeartScale float64
	// PulseAmp is the relative size swing of the breathing heart.
	PulseAmp float64
	// BaseSize is the particle radius at scale 1.
	BaseSize float64
	// Jitter is the half-range of the random per-axis velocity kick.
	Jitter float64
	// Damping multiplies velocity every drifting frame.
	Damping float64
	// SeekGain is the proportional gain used to pull particles onto the heart.
	SeekGain float64
	// ColorRateR and ColorRateGB are the per-frame colour lerp weights.
	ColorRateR  float64
	ColorRateGB float64
	// InitialSpeed is the full range of each initial velocity component.
	InitialSpeed float64
	// BurstSpeedMin and BurstSpeedMax bound the radial release speed.
	BurstSpeedMin float64
	BurstSpeedMax float64
	// BurstGrowth is added to an exploding particle's scale every frame.
	BurstGrowth float64
	// RespawnFrames is how long the scene stays exploded before respawning.
	RespawnFrames int
	// SpawnDelayMin and SpawnDelayMax bound a fresh particle's countdown.
	SpawnDelayMin int
	SpawnDelayMax int
	// FreshScale is the scale a fresh particle starts from.
	FreshScale float64
	// FadeRate is the per-frame lerp weight of a fresh particle's fade-in.
	FadeRate float64
	// TrailAlpha is the opacity of the black wash that leaves motion trails.
	TrailAlpha float64
}

// DefaultParams returns the reference tuning at a 60 Hz frame rate.
func DefaultParams() Params {
	return Params{
		ParticleCount: 150,
		HeartScale:    10,
		PulseAmp:      0.05,
		BaseSize:      2,
		Jitter:        0.05,
		Damping:       0.94,
		SeekGain:      0.015,
		ColorRateR:    0.01,
		ColorRateGB:   0.03,
		InitialSpeed:  1.5,
		BurstSpeedMin: 15,
		BurstSpeedMax: 20,
		BurstGrowth:   0.05,
		RespawnFrames: 40,
		SpawnDelayMin: 20,
		SpawnDelayMax: 50,
		FreshScale:    0.2,
		FadeRate:      0.05,
		TrailAlpha:    0.07,
	}
}
