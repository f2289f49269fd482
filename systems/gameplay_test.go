package systems

import (
	"os"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/pigem/assets"
	"github.com/automoto/pigem/components"
	cfg "github.com/automoto/pigem/config"
	"github.com/automoto/pigem/leveldata"
	"github.com/automoto/pigem/systems/factory"
	"github.com/automoto/pigem/tags"
)

// held is what the fake keyboard reports in tests.
var held [cfg.ActionCount]bool

func TestMain(m *testing.M) {
	pollDevices = func() deviceState {
		return deviceState{Actions: held, Keyboard: true}
	}
	os.Exit(m.Run())
}

// farm returns a 20x12 tile map with 64px tiles and the pig spawning at (100, 100).
func farm() *leveldata.LevelData {
	return &leveldata.LevelData{
		Name:       "test",
		MapWidth:   20 * 64,
		MapHeight:  12 * 64,
		TileWidth:  64,
		TileHeight: 64,
		Spawn:      leveldata.Point{X: 100, Y: 100},
		HasSpawn:   true,
	}
}

func farAway() leveldata.Tile {
	return leveldata.Tile{Col: 15, Row: 10, Rect: leveldata.Rect{X: 960, Y: 640, W: 64, H: 64}}
}

// newTestWorld builds a level world without images or audio.
func newTestWorld(t *testing.T, data *leveldata.LevelData) *ecs.ECS {
	t.Helper()

	held = [cfg.ActionCount]bool{}
	e := ecs.NewECS(donburi.NewWorld())
	getOrCreateInput(e)
	factory.PopulateLevel(e, &assets.Level{LevelData: data})
	factory.CreateCamera(e)
	spawn := data.SpawnPoint()
	factory.SpawnPlayer(e, spawn.X, spawn.Y, factory.NewAnimationData("player", cfg.Player.FrameWidth, cfg.Player.FrameHeight))
	SnapCamera(e)
	return e
}

// hold makes exactly the given actions held on the next poll.
func hold(ids ...cfg.ActionID) {
	held = [cfg.ActionCount]bool{}
	for _, id := range ids {
		held[id] = true
	}
}

// step runs one game tick with exactly the given actions held.
func step(e *ecs.ECS, ids ...cfg.ActionID) {
	hold(ids...)
	for _, system := range GameSystems() {
		system(e)
	}
}

func stepN(e *ecs.ECS, n int, ids ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		step(e, ids...)
	}
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return entry
}

func playerPos(t *testing.T, e *ecs.ECS) (float64, float64) {
	t.Helper()
	obj := components.Object.Get(playerEntry(t, e)).Object
	return obj.X, obj.Y
}

func TestSpawnCentersBoxOnSpawnPoint(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	e := newTestWorld(t, data)

	x, y := playerPos(t, e)
	if x != 80 || y != 80 {
		t.Fatalf("player box at (%v, %v), want (80, 80)", x, y)
	}
	if f := components.Player.Get(playerEntry(t, e)).Facing; f != cfg.FacingDown {
		t.Errorf("initial facing = %v, want down", f)
	}
}

func TestMovementStopsFlushAgainstWall(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	data.Walls = []leveldata.Rect{{X: 200, Y: 64, W: 64, H: 64}}
	e := newTestWorld(t, data)

	stepN(e, 30, cfg.ActionMoveRight)

	x, y := playerPos(t, e)
	if x != 160 {
		t.Errorf("X = %v, want 160 (touching the wall at 200)", x)
	}
	if y != 80 {
		t.Errorf("Y = %v, want 80", y)
	}
	if sx := components.Physics.Get(playerEntry(t, e)).SpeedX; sx != cfg.Player.Speed {
		t.Errorf("SpeedX = %v while blocked, want %v", sx, cfg.Player.Speed)
	}
}

func TestMovementSlidesAlongWall(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	data.Walls = []leveldata.Rect{{X: 200, Y: 64, W: 64, H: 256}}
	e := newTestWorld(t, data)

	stepN(e, 20, cfg.ActionMoveRight, cfg.ActionMoveDown)

	x, y := playerPos(t, e)
	if x != 160 {
		t.Errorf("X = %v, want 160 against the wall", x)
	}
	if y != 180 {
		t.Errorf("Y = %v, want 180 after sliding down", y)
	}
}

func TestInputPressAndRelease(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	e := newTestWorld(t, data)
	physics := components.Physics.Get(playerEntry(t, e))
	player := components.Player.Get(playerEntry(t, e))

	tests := []struct {
		name       string
		held       []cfg.ActionID
		wantX      float64
		wantY      float64
		wantFacing cfg.Facing
	}{
		{"press right", []cfg.ActionID{cfg.ActionMoveRight}, 5, 0, cfg.FacingRight},
		{"add up", []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMoveUp}, 5, -5, cfg.FacingUp},
		{"release up keeps facing", []cfg.ActionID{cfg.ActionMoveRight}, 5, 0, cfg.FacingUp},
		{"press left while right held", []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMoveLeft}, -5, 0, cfg.FacingLeft},
		{"release right stops the axis", []cfg.ActionID{cfg.ActionMoveLeft}, 0, 0, cfg.FacingLeft},
		{"release all", nil, 0, 0, cfg.FacingLeft},
		{"press down", []cfg.ActionID{cfg.ActionMoveDown}, 0, 5, cfg.FacingDown},
	}
	for _, tt := range tests {
		step(e, tt.held...)
		if physics.SpeedX != tt.wantX || physics.SpeedY != tt.wantY {
			t.Errorf("%s: speed = (%v, %v), want (%v, %v)", tt.name, physics.SpeedX, physics.SpeedY, tt.wantX, tt.wantY)
		}
		if player.Facing != tt.wantFacing {
			t.Errorf("%s: facing = %v, want %v", tt.name, player.Facing, tt.wantFacing)
		}
	}
}

func TestReleaseStopsThePig(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	e := newTestWorld(t, data)

	stepN(e, 3, cfg.ActionMoveRight)
	stepN(e, 5)

	x, _ := playerPos(t, e)
	if x != 95 {
		t.Errorf("X = %v, want 95", x)
	}
}

func TestEatingAnApple(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{
		{Col: 2, Row: 1, Rect: leveldata.Rect{X: 128, Y: 64, W: 64, H: 64}},
		farAway(),
	}
	e := newTestWorld(t, data)

	var eaten []AppleEatenEvent
	AppleEaten.Subscribe(e.World, func(_ donburi.World, ev AppleEatenEvent) {
		eaten = append(eaten, ev)
	})

	step(e, cfg.ActionMoveRight)
	if got := GetRound(e).Score; got != 0 {
		t.Fatalf("score = %d before reaching the apple", got)
	}

	step(e, cfg.ActionMoveRight)
	round := GetRound(e)
	if round.Score != 1 || round.Remaining() != 1 {
		t.Fatalf("score = %d remaining = %d, want 1 and 1", round.Score, round.Remaining())
	}
	if n := count(e, components.Apple); n != 1 {
		t.Errorf("%d apples left in world, want 1", n)
	}
	if n := count(e, components.PickupEffect); n != 1 {
		t.Errorf("%d pickup effects, want 1", n)
	}
	if len(eaten) != 1 {
		t.Fatalf("got %d AppleEaten events, want 1", len(eaten))
	}
	if ev := eaten[0]; ev.Score != 1 || ev.Remaining != 1 || ev.Position != (Position{X: 128, Y: 64}) || ev.Level != "test" {
		t.Errorf("unexpected event %+v", ev)
	}

	// Walking across the spot again scores nothing.
	stepN(e, 10, cfg.ActionMoveRight)
	if round.Score != 1 {
		t.Errorf("score = %d after walking over the eaten apple, want 1", round.Score)
	}
	if round.Finished() {
		t.Errorf("round finished with an apple left: %v", round.Outcome)
	}
}

func TestPickupEffectExpires(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	e := newTestWorld(t, data)

	SpawnPickupEffect(e, nil, 10, 20)
	n := int(cfg.Effects.PickupDuration)
	stepN(e, n-1)
	if c := count(e, components.PickupEffect); c != 1 {
		t.Fatalf("effect gone after %d ticks, want it alive", n-1)
	}
	step(e)
	if c := count(e, components.PickupEffect); c != 0 {
		t.Errorf("%d effects after %d ticks, want 0", c, n)
	}
}

func TestEdgeLosesRound(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	data.Edges = []leveldata.Rect{{X: 208, Y: 80, W: 32, H: 32}}
	e := newTestWorld(t, data)

	var ended []RoundEndedEvent
	RoundEnded.Subscribe(e.World, func(_ donburi.World, ev RoundEndedEvent) {
		ended = append(ended, ev)
	})

	// The box's right side reaches 205 after 17 ticks and 210 after 18.
	stepN(e, 17, cfg.ActionMoveRight)
	if IsRoundFinished(e) {
		t.Fatal("round finished before touching the edge hit box")
	}

	step(e, cfg.ActionMoveRight)
	round := GetRound(e)
	if round.Outcome != cfg.OutcomeLost {
		t.Fatalf("outcome = %v, want lost", round.Outcome)
	}
	if len(ended) != 1 || ended[0].Outcome != cfg.OutcomeLost || ended[0].Ticks != 18 {
		t.Errorf("RoundEnded events = %+v, want one lost event at tick 18", ended)
	}

	// The pig stays put once the round is over.
	x, _ := playerPos(t, e)
	stepN(e, 5, cfg.ActionMoveRight)
	if nx, _ := playerPos(t, e); nx != x {
		t.Errorf("pig moved from %v to %v after the round ended", x, nx)
	}
	if len(ended) != 1 {
		t.Errorf("got %d RoundEnded events, want 1", len(ended))
	}
}

func TestLastAppleWinsRound(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{{Col: 2, Row: 1, Rect: leveldata.Rect{X: 128, Y: 64, W: 64, H: 64}}}
	e := newTestWorld(t, data)

	stepN(e, 2, cfg.ActionMoveRight)

	round := GetRound(e)
	if round.Outcome != cfg.OutcomeWon {
		t.Fatalf("outcome = %v, want won", round.Outcome)
	}
	if round.Score != 1 || round.Goal != 1 {
		t.Errorf("score %d/%d, want 1/1", round.Score, round.Goal)
	}
}

func TestFallBeatsWinOnSameTick(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{{Col: 2, Row: 1, Rect: leveldata.Rect{X: 128, Y: 64, W: 64, H: 64}}}
	data.Edges = []leveldata.Rect{{X: 125, Y: 80, W: 10, H: 10}}
	e := newTestWorld(t, data)

	stepN(e, 2, cfg.ActionMoveRight)

	round := GetRound(e)
	if round.Outcome != cfg.OutcomeLost {
		t.Errorf("outcome = %v, want lost", round.Outcome)
	}
	if round.Score != 1 {
		t.Errorf("score = %d, want the apple counted", round.Score)
	}
}

func TestEmptyLevelWinsAtOnce(t *testing.T) {
	e := newTestWorld(t, farm())

	step(e)

	if got := GetRound(e).Outcome; got != cfg.OutcomeWon {
		t.Errorf("outcome = %v, want won", got)
	}
}

func TestBoundsKeepPigOnMap(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	data.Spawn = leveldata.Point{X: 30, Y: 30}
	e := newTestWorld(t, data)

	stepN(e, 10, cfg.ActionMoveLeft, cfg.ActionMoveUp)

	if x, y := playerPos(t, e); x != 0 || y != 0 {
		t.Errorf("player at (%v, %v), want (0, 0)", x, y)
	}
}

func TestCameraFollowsWithinMap(t *testing.T) {
	tests := []struct {
		name         string
		mapW, mapH   int
		spawn        leveldata.Point
		wantX, wantY float64
	}{
		{"top left corner", 2048, 1536, leveldata.Point{X: 100, Y: 100}, 512, 384},
		{"middle", 2048, 1536, leveldata.Point{X: 1000, Y: 700}, 1000, 700},
		{"bottom right corner", 2048, 1536, leveldata.Point{X: 2000, Y: 1500}, 1536, 1152},
		{"map smaller than screen", 640, 448, leveldata.Point{X: 320, Y: 224}, 512, 384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := farm()
			data.MapWidth, data.MapHeight = tt.mapW, tt.mapH
			data.Spawn = tt.spawn
			data.Apples = []leveldata.Tile{{Rect: leveldata.Rect{X: 0, Y: 0, W: 64, H: 64}}}
			e := newTestWorld(t, data)

			step(e)

			entry, _ := components.Camera.First(e.World)
			cam := components.Camera.Get(entry).Position
			if cam.X != tt.wantX || cam.Y != tt.wantY {
				t.Errorf("camera at (%v, %v), want (%v, %v)", cam.X, cam.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	camera := &components.CameraData{}
	camera.Position.X, camera.Position.Y = 1000, 700

	x, y := WorldToScreen(camera, 1000, 700)
	if x != float64(cfg.C.Width)/2 || y != float64(cfg.C.Height)/2 {
		t.Errorf("camera center maps to (%v, %v), want screen center", x, y)
	}
}

func TestWalkCycleAdvancesOnlyWhileMoving(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}

	idle := newTestWorld(t, data)
	stepN(idle, 30)
	if f := components.Animation.Get(playerEntry(t, idle)).CurrentAnimation.Frame(); f != 0 {
		t.Errorf("frame = %d while standing, want 0", f)
	}

	e := newTestWorld(t, data)
	anim := components.Animation.Get(playerEntry(t, e))

	stepN(e, 5, cfg.ActionMoveRight)
	if f := anim.CurrentAnimation.Frame(); f != 0 {
		t.Fatalf("frame = %d after 5 moving ticks, want 0", f)
	}
	step(e, cfg.ActionMoveRight)
	if f := anim.CurrentAnimation.Frame(); f != 1 {
		t.Errorf("frame = %d after 6 moving ticks, want 1", f)
	}
	if anim.CurrentSheet != cfg.WalkRight {
		t.Errorf("sheet = %v, want WalkRight", anim.CurrentSheet)
	}

	stepN(e, 3)
	if f := anim.CurrentAnimation.Frame(); f != 1 {
		t.Errorf("frame = %d after stopping, want it held at 1", f)
	}

	// Turning swaps the sheet and keeps the frame.
	step(e, cfg.ActionMoveUp)
	if anim.CurrentSheet != cfg.WalkUp {
		t.Errorf("sheet = %v after turning up, want WalkUp", anim.CurrentSheet)
	}
	if f := anim.CurrentAnimation.Frame(); f != 1 {
		t.Errorf("frame = %d after turning, want 1", f)
	}
}

func TestPauseFreezesGameplay(t *testing.T) {
	data := farm()
	data.Apples = []leveldata.Tile{farAway()}
	e := newTestWorld(t, data)

	step(e, cfg.ActionMoveRight)
	GetOrCreatePause(e).IsPaused = true
	stepN(e, 10, cfg.ActionMoveRight)

	if x, _ := playerPos(t, e); x != 85 {
		t.Errorf("X = %v while paused, want 85", x)
	}
	if ticks := GetRound(e).Ticks; ticks != 1 {
		t.Errorf("round ticks = %d, want 1", ticks)
	}
}
