package config

import "time"

const (
	WindowWidth  = 720
	WindowHeight = 640

	// 50 ticks per second, one tick every 20ms
	TicksPerSecond = 50
	TickDuration   = time.Second / TicksPerSecond

	// Wheel geometry
	WheelCenterX    = WindowWidth / 2
	WheelCenterY    = 300
	WheelRadius     = 220
	WheelArcSteps   = 64
	LabelRadiusFrac = 1 / 1.5

	// Button dimensions
	ButtonWidth   = 70
	ButtonHeight  = 30
	ButtonGap     = 8
	ButtonY       = WindowHeight - ButtonHeight - 16
	ButtonCount   = 9
	ButtonStripeW = ButtonCount*ButtonWidth + (ButtonCount-1)*ButtonGap
	ButtonX       = (WindowWidth - ButtonStripeW) / 2

	// Spin lifecycle
	SpinMinVelocity   = 20.0 // deg/tick
	SpinMaxVelocity   = 30.0 // deg/tick
	SpinAutoStopAfter = 5 * time.Second
	SpinDecayFactor   = 0.96
	SpinJitterChance  = 0.3
	SpinJitterBand    = 0.1
	SpinMaxDecayRatio = 0.99
	SpinStopThreshold = 0.5 // deg/tick

	// Confetti
	ParticleMinSize       = 4.0
	ParticleMaxSize       = 10.0
	ParticleMinSpeed      = 2.0 // px/tick
	ParticleMaxSpeed      = 6.0
	ParticleMaxSpin       = 10.0 // deg/tick, either direction
	ParticleSpawnTop      = -20.0
	ParticleSpawnBottom   = -5.0
	ParticleWinBurst      = 100
	ParticleTrickleBurst  = 5
	ParticleTrickleEvery  = time.Second
	ParticleTrickleChance = 0.1

	// Sound
	SampleRate       = 44100
	SoundBufferTime  = 50 * time.Millisecond
	SoundTapRingSize = 4096
	PointerPulseGain = 3.0

	HistoryCapacity = 8
)
