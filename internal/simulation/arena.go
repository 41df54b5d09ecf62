// Package simulation owns the Arena: the per-match world that sequences
// car, ball, boost-pad, and contact-dispatch updates through the fixed
// phase ordering, exposes the callback registry, and drives both the
// single-arena and multi-arena stepping loops.
package simulation

import (
	"sort"

	"rocketsim/internal/ball"
	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/contact"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
	"rocketsim/internal/simerr"
)

// Standard soccar field geometry. No collision-mesh catalog was retrieved
// alongside the spec, so these are the well-known public field dimensions
// used in place of the original engine's compiled arena mesh; see
// DESIGN.md for this Open Question's resolution.
const (
	SideWallX     float32 = 4096
	BackWallY     float32 = 5120
	CeilingZ      float32 = 2044
	GoalHalfWidth float32 = 892.755
	GoalHeight    float32 = 642.775
)

// Arena owns one independent match world: its mode, mutator tuning, cars,
// ball, boost pads, contact tracker, and callback registry.
type Arena struct {
	Mode     mutator.GameMode
	Mutator  mutator.Config
	TickRate float32
	tickTime float32

	tickCount       uint64
	lastSnapshotTick uint64

	nextCarID uint32
	cars      map[uint32]*car.Car

	ball *ball.Ball
	pads []*boost.Pad

	tracker *contact.Tracker

	scoreBlue, scoreOrange uint32

	rand *mathutil.Rand

	callbacks callbackRegistry

	storedErr error

	walls []wallPlane
}

type wallPlane struct {
	field  PlaneField
	label  string
}

// NewArena constructs an empty arena for the given mode, tick rate, and
// seed. Boost pads are populated from the mode's default layout when the
// mode has pads at all.
func NewArena(mode mutator.GameMode, tickRate float32, seed int64) *Arena {
	if tickRate <= 0 {
		tickRate = 120
	}
	a := &Arena{
		Mode:     mode,
		Mutator:  mutator.DefaultConfig(mode),
		TickRate: tickRate,
		tickTime: 1 / tickRate,
		cars:     make(map[uint32]*car.Car),
		ball:     ball.New(mutator.DefaultConfig(mode)),
		tracker:  &contact.Tracker{},
		rand:     mathutil.NewRand(seed),
		nextCarID: 1,
	}
	if mode.HasBoostPads() {
		a.pads = defaultBoostPadLayout()
		boost.SortPads(a.pads)
	}
	a.walls = standardWalls(mode)
	return a
}

func standardWalls(mode mutator.GameMode) []wallPlane {
	var walls []wallPlane
	if mode.HasGroundPlane() {
		walls = append(walls, wallPlane{field: NewPlaneField(Vec3{}, Vec3{Z: 1}), label: "floor"})
	}
	walls = append(walls,
		wallPlane{field: NewPlaneField(Vec3{Z: float64(CeilingZ)}, Vec3{Z: -1}), label: "ceiling"},
		wallPlane{field: NewPlaneField(Vec3{X: float64(SideWallX)}, Vec3{X: -1}), label: "wall+x"},
		wallPlane{field: NewPlaneField(Vec3{X: -float64(SideWallX)}, Vec3{X: 1}), label: "wall-x"},
	)
	if !mode.HasGoals() {
		walls = append(walls,
			wallPlane{field: NewPlaneField(Vec3{Y: float64(BackWallY)}, Vec3{Y: -1}), label: "wall+y"},
			wallPlane{field: NewPlaneField(Vec3{Y: -float64(BackWallY)}, Vec3{Y: 1}), label: "wall-y"},
		)
	}
	return walls
}

// groundClearanceAt returns the floor's world Z elevation beneath pos,
// found by sphere-tracing straight down against the arena's floor plane
// field. Soccar's floor is a flat plane at Z=0, so this always resolves
// to 0, but the raycast keeps spawn placement correct for any future
// mode whose floor field is not a flat plane at the origin.
func (a *Arena) groundClearanceAt(pos mathutil.Vec) float32 {
	for _, w := range a.walls {
		if w.label != "floor" {
			continue
		}
		origin := Vec3{X: float64(pos.X), Y: float64(pos.Y), Z: 10000}
		hit, _, point := Raycast(w.field, origin, Vec3{Z: -1}, 20000, 64, 0.5)
		if hit {
			return float32(point.Z)
		}
	}
	return 0
}

// defaultBoostPadLayout returns a soccar-style pad grid: eight big pads
// (two of them on the centerline near the back walls) plus 21 small pads.
// Grounded on the pickup-volume geometry in internal/boost; the exact
// original mesh-derived coordinates were not retrieved, so these are
// plausible symmetric placements documented in DESIGN.md.
func defaultBoostPadLayout() []*boost.Pad {
	var pads []*boost.Pad
	bigSpots := [][2]float32{
		{0, 4240}, {0, -4240},
		{-3072, 0}, {3072, 0},
		{-1788, 2170}, {1788, 2170},
		{-1788, -2170}, {1788, -2170},
	}
	for _, spot := range bigSpots {
		pads = append(pads, boost.New(mathutil.Vec{X: spot[0], Y: spot[1]}, true))
	}
	smallRing := [][2]float32{
		{0, 0}, {-1024, 0}, {1024, 0},
		{-2048, -1036}, {2048, -1036},
		{-2048, 1036}, {2048, 1036},
		{-745, -2230}, {745, -2230},
		{-745, 2230}, {745, 2230},
		{-3584, -2484}, {3584, -2484},
		{-3584, 2484}, {3584, 2484},
		{-1536, -4000}, {1536, -4000},
		{-1536, 4000}, {1536, 4000},
		{-512, -2456}, {512, -2456},
	}
	for _, spot := range smallRing {
		pads = append(pads, boost.New(mathutil.Vec{X: spot[0], Y: spot[1]}, false))
	}
	return pads
}

// AddCar creates and registers a new car on the given team, assigning it
// the next sequential ID and a team-side spawn slot.
func (a *Arena) AddCar(team mutator.Team, cfg car.Config) *car.Car {
	id := a.nextCarID
	a.nextCarID++
	c := car.New(id, team, cfg)
	ordinal := a.teamCount(team)
	c.SpawnPose = func() car.Pose { return spawnSlot(team, ordinal) }
	a.cars[id] = c
	return c
}

func (a *Arena) teamCount(team mutator.Team) int {
	n := 0
	for _, c := range a.cars {
		if c.Team == team {
			n++
		}
	}
	return n
}

// RemoveCar deletes a car from the arena. Returns an error if no car with
// that ID exists.
func (a *Arena) RemoveCar(id uint32) error {
	if _, ok := a.cars[id]; !ok {
		return simerr.Operationf("no car with id %d", id)
	}
	delete(a.cars, id)
	return nil
}

// Cars returns every car sorted by ascending CarID, matching get_cars().
func (a *Arena) Cars() []*car.Car {
	out := make([]*car.Car, 0, len(a.cars))
	for _, c := range a.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CarByID returns the car with the given ID, or nil.
func (a *Arena) CarByID(id uint32) *car.Car { return a.cars[id] }

// Ball returns the arena's single ball.
func (a *Arena) Ball() *ball.Ball { return a.ball }

// Pads returns the boost pads in canonical (y, x) order.
func (a *Arena) Pads() []*boost.Pad { return a.pads }

// TickCount returns the number of ticks advanced so far.
func (a *Arena) TickCount() uint64 { return a.tickCount }

// LastSnapshotTick returns the tick count recorded at the last snapshot
// export.
func (a *Arena) LastSnapshotTick() uint64 { return a.lastSnapshotTick }

// MarkSnapshotTaken records the current tick as the last snapshot tick.
func (a *Arena) MarkSnapshotTaken() { a.lastSnapshotTick = a.tickCount }

// Score returns the current blue/orange goal counts.
func (a *Arena) Score() (blue, orange uint32) { return a.scoreBlue, a.scoreOrange }

// TickTime returns the fixed per-tick duration in seconds.
func (a *Arena) TickTime() float32 { return a.tickTime }
