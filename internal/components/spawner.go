package components

import (
	"fmt"
	"image/color"

	"editor3d/internal/engine"

	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	engine.RegisterComponent("Spawner", func() engine.Component {
		return NewSpawner()
	})
}

// Wave is one burst of spawns.
type Wave struct {
	Count int        `yaml:"count"`
	Delay float32    `yaml:"delay"`
	Tint  color.RGBA `yaml:"tint,flow"`
}

// SpawnTemplate overrides fields of spawned objects.
type SpawnTemplate struct {
	Name  string     `yaml:"name"`
	Tags  []string   `yaml:"tags,flow"`
	Scale mgl32.Vec3 `yaml:"scale,flow"`
}

// SpawnStats is runtime state. It is not saved.
type SpawnStats struct {
	Spawned int
	Elapsed float32
}

func (s SpawnStats) String() string {
	return fmt.Sprintf("%d spawned, %.1fs", s.Spawned, s.Elapsed)
}

// Spawner emits objects at its spawn points. It only counts spawns; the
// editor shows the counters live while the scene is playing.
type Spawner struct {
	engine.BaseComponent `yaml:"-"`
	Prefab               string               `yaml:"prefab"`
	Interval             float32              `yaml:"interval"`
	MaxAlive             int                  `yaml:"maxAlive" inspect:"Max Alive"`
	Target               engine.GameObjectRef `yaml:"target"`
	SpawnPoints          []mgl32.Vec3         `yaml:"spawnPoints" inspect:"Spawn Points"`
	Corners              [4]mgl32.Vec2        `yaml:"corners,flow"`
	Weights              map[string]float32   `yaml:"weights"`
	Waves                []Wave               `yaml:"waves"`
	Template             *SpawnTemplate       `yaml:"template"`
	Stats                SpawnStats           `yaml:"-"`
	timer                float32
	next                 int
}

func NewSpawner() *Spawner {
	return &Spawner{
		Prefab:   "cube",
		Interval: 1,
		MaxAlive: 10,
	}
}

// Update advances the spawn timer.
func (s *Spawner) Update(deltaTime float32) {
	s.Stats.Elapsed += deltaTime
	if s.Interval <= 0 || s.Stats.Spawned >= s.MaxAlive {
		return
	}
	s.timer += deltaTime
	for s.timer >= s.Interval && s.Stats.Spawned < s.MaxAlive {
		s.timer -= s.Interval
		s.Stats.Spawned++
		if len(s.SpawnPoints) > 0 {
			s.next = (s.next + 1) % len(s.SpawnPoints)
		}
	}
}

// NextPoint returns the spawn point used for the next spawn, relative to the
// owning object.
func (s *Spawner) NextPoint() mgl32.Vec3 {
	var p mgl32.Vec3
	if len(s.SpawnPoints) > 0 {
		p = s.SpawnPoints[s.next%len(s.SpawnPoints)]
	}
	if g := s.GetGameObject(); g != nil {
		p = g.WorldPosition().Add(p)
	}
	return p
}

// Reset clears the runtime counters.
func (s *Spawner) Reset() {
	s.Stats = SpawnStats{}
	s.timer = 0
	s.next = 0
}
