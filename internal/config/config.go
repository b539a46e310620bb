package config

const (
	AppName = "heartswarm"

	WindowWidth  = 1024
	WindowHeight = 768

	// Simulation rate. Motion is stepped per tick, so this is also the
	// reference speed of the animation.
	TPS = 60

	// Title overlay
	TitleFontSize  = 42
	TitleGlowSize  = 4
	TitleFadeInSec = 1.5
	TitleOffsetY   = 0.18 // fraction of the window height

	// Terminal backend
	TermFrameMs       = 16
	TermScaleDivisor  = 40
	TermMinHeartScale = 0.5

	// Burst sound
	SampleRate   = 44100
	BurstMs      = 900
	BurstThumpHz = 55
)
