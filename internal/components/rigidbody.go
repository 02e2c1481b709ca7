package components

import (
	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Component {
		return NewRigidbody()
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec
	SleepAngularThreshold  = 1.0 // deg/sec
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent `yaml:"-"`
	Velocity             mgl32.Vec3 `yaml:"velocity,flow"`
	AngularVelocity      mgl32.Vec3 `yaml:"angularVelocity,flow" inspect:"Angular Velocity"` // degrees per second on each axis
	Mass                 float32    `yaml:"mass"`
	Bounciness           float32    `yaml:"bounciness"` // 0 = no bounce, 1 = perfect bounce
	Friction             float32    `yaml:"friction"`   // 0 = ice, 1 = stops immediately
	AngularDamping       float32    `yaml:"angularDamping" inspect:"Angular Damping"`
	UseGravity           bool       `yaml:"useGravity" inspect:"Use Gravity"`
	IsKinematic          bool       `yaml:"isKinematic" inspect:"Is Kinematic"` // moves but doesn't get pushed by physics
	CanSleep             bool       `yaml:"canSleep" inspect:"Can Sleep"`

	IsSleeping bool `yaml:"-" inspect:"Sleeping"`
	sleepTimer float32
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Bounciness:     0.5,
		Friction:       0.1,
		AngularDamping: 0.98,
		UseGravity:     true,
		CanSleep:       true,
	}
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// Update damps the velocities and puts the body to sleep once it has been
// nearly still for SleepTimeThreshold.
func (r *Rigidbody) Update(deltaTime float32) {
	if r.IsKinematic || r.IsSleeping {
		return
	}
	r.AngularVelocity = r.AngularVelocity.Mul(r.AngularDamping)
	if !r.CanSleep {
		return
	}
	if r.Velocity.Len() < SleepVelocityThreshold && r.AngularVelocity.Len() < SleepAngularThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = mgl32.Vec3{}
			r.AngularVelocity = mgl32.Vec3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
