package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

func newTestGame(seed int64) *Game {
	return New(rand.New(rand.NewSource(seed)))
}

func pts(coords ...int) []core.Point {
	var out []core.Point
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Point{X: coords[i], Y: coords[i+1]})
	}
	return out
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(1)

	want := pts(20, 10, 19, 10, 18, 10)
	if !slices.Equal(g.Body(), want) {
		t.Fatalf("Initial body = %v, want %v", g.Body(), want)
	}
	if g.Direction() != DirRight || g.Pending() != DirRight {
		t.Errorf("Expected initial direction right, got %v/%v", g.Direction(), g.Pending())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.Status() != StatusRunning {
		t.Errorf("Expected running, got %v", g.Status())
	}
	if g.occupies(g.Food()) {
		t.Errorf("Food %v spawned on the body", g.Food())
	}
	if !g.Bounds().Contains(g.Food()) {
		t.Errorf("Food %v outside the board", g.Food())
	}
}

func TestStepEatsFoodAndGrows(t *testing.T) {
	g := newTestGame(2)
	g.food = core.Point{X: 21, Y: 10}

	if got := g.Step(); got != OutcomeAte {
		t.Fatalf("Step() = %v, want OutcomeAte", got)
	}

	want := pts(21, 10, 20, 10, 19, 10, 18, 10)
	if !slices.Equal(g.Body(), want) {
		t.Errorf("Body after eating = %v, want %v", g.Body(), want)
	}
	if g.Score() != FoodPoints {
		t.Errorf("Expected score %d, got %d", FoodPoints, g.Score())
	}
	if g.occupies(g.Food()) {
		t.Errorf("New food %v spawned on the body", g.Food())
	}
}

func TestStepMovesWithoutFood(t *testing.T) {
	g := newTestGame(3)
	g.food = core.Point{X: 0, Y: 0}

	if got := g.Step(); got != OutcomeMoved {
		t.Fatalf("Step() = %v, want OutcomeMoved", got)
	}

	want := pts(21, 10, 20, 10, 19, 10)
	if !slices.Equal(g.Body(), want) {
		t.Errorf("Body after move = %v, want %v", g.Body(), want)
	}
	if g.Score() != 0 {
		t.Errorf("Score changed without food: %d", g.Score())
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(4)
	g.body = pts(0, 10, 1, 10, 2, 10)
	g.direction = DirLeft
	g.pending = DirLeft
	g.food = core.Point{X: 30, Y: 5}

	if got := g.Step(); got != OutcomeGameOver {
		t.Fatalf("Step() = %v, want OutcomeGameOver", got)
	}
	if g.Status() != StatusGameOver {
		t.Errorf("Expected game over, got %v", g.Status())
	}
	if g.Reason() != ReasonWall {
		t.Errorf("Reason = %q, want %q", g.Reason(), ReasonWall)
	}
}

func TestWallCollisionAllEdges(t *testing.T) {
	cases := []struct {
		name string
		head core.Point
		dir  Direction
	}{
		{"top", core.Point{X: 5, Y: 0}, DirUp},
		{"bottom", core.Point{X: 5, Y: BoardHeight - 1}, DirDown},
		{"left", core.Point{X: 0, Y: 5}, DirLeft},
		{"right", core.Point{X: BoardWidth - 1, Y: 5}, DirRight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(5)
			g.body = []core.Point{tc.head}
			g.direction = tc.dir
			g.pending = tc.dir
			g.Step()
			if g.Reason() != ReasonWall {
				t.Errorf("Expected wall collision, got status %v reason %q", g.Status(), g.Reason())
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(6)
	// Head at (5,5) turning down into its own body at (5,6).
	g.body = pts(5, 5, 6, 5, 6, 6, 5, 6, 4, 6)
	g.direction = DirLeft
	g.pending = DirDown

	if got := g.Step(); got != OutcomeGameOver {
		t.Fatalf("Step() = %v, want OutcomeGameOver", got)
	}
	if g.Reason() != ReasonSelf {
		t.Errorf("Reason = %q, want %q", g.Reason(), ReasonSelf)
	}
}

func TestMovingIntoTailIsCollision(t *testing.T) {
	g := newTestGame(7)
	// A 2x2 loop: the tail at (5,6) is the cell the head moves into.
	g.body = pts(5, 5, 6, 5, 6, 6, 5, 6)
	g.direction = DirLeft
	g.pending = DirDown
	g.food = core.Point{X: 30, Y: 15}

	g.Step()

	if g.Status() != StatusGameOver || g.Reason() != ReasonSelf {
		t.Errorf("Moving into the tail should end the game, got %v %q", g.Status(), g.Reason())
	}
	if g.Length() != 4 {
		t.Errorf("Body must not change on collision, got length %d", g.Length())
	}
}

func TestTurnRejectsReverse(t *testing.T) {
	g := newTestGame(8)

	if g.Turn(DirLeft) {
		t.Error("Turn(left) while heading right should be refused")
	}
	if g.Pending() != DirRight {
		t.Errorf("Pending changed to %v", g.Pending())
	}
}

func TestTurnsBetweenTicksCollapseToLatest(t *testing.T) {
	g := newTestGame(9)
	g.food = core.Point{X: 0, Y: 0}

	g.Turn(DirUp)
	// Down is only the reverse of the pending direction, not of the
	// current one, so it is accepted.
	if !g.Turn(DirDown) {
		t.Fatal("Turn(down) should be accepted while heading right")
	}
	g.Step()

	if g.Direction() != DirDown {
		t.Errorf("Direction = %v, want down", g.Direction())
	}
	if g.Head() != (core.Point{X: 20, Y: 11}) {
		t.Errorf("Head = %v, want (20,11)", g.Head())
	}

	// Now heading down, up is the reverse.
	if g.Turn(DirUp) {
		t.Error("Turn(up) while heading down should be refused")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := newTestGame(10)

	g.Stop()
	g.Stop()

	if g.Status() != StatusStopped {
		t.Errorf("Expected stopped, got %v", g.Status())
	}
	if got := g.Step(); got != OutcomeIdle {
		t.Errorf("Step() after stop = %v, want OutcomeIdle", got)
	}
	if g.Turn(DirUp) {
		t.Error("Turn after stop should be refused")
	}
}

func TestStopAfterGameOverKeepsReason(t *testing.T) {
	g := newTestGame(11)
	g.body = pts(0, 10)
	g.direction = DirLeft
	g.pending = DirLeft
	g.Step()

	g.Stop()

	if g.Status() != StatusGameOver || g.Reason() != ReasonWall {
		t.Errorf("Stop must not override game over, got %v %q", g.Status(), g.Reason())
	}
}

func TestFoodNeverOnBody(t *testing.T) {
	g := NewBoard(5, 1, rand.New(rand.NewSource(12)))

	for i := 0; i < 200; i++ {
		g.spawnFood()
		if g.occupies(g.Food()) {
			t.Fatalf("Food %v spawned on body %v", g.Food(), g.Body())
		}
		if !g.HasFood() {
			t.Fatal("Expected food while free cells remain")
		}
	}
}

func TestFoodOnFullBoard(t *testing.T) {
	g := NewBoard(4, 1, rand.New(rand.NewSource(13)))
	if g.Food() != (core.Point{X: 3, Y: 0}) {
		t.Fatalf("Only free cell is (3,0), food at %v", g.Food())
	}

	if got := g.Step(); got != OutcomeAte {
		t.Fatalf("Step() = %v, want OutcomeAte", got)
	}
	if g.HasFood() {
		t.Errorf("Full board should have no food, got %v", g.Food())
	}
	if g.Length() != 4 {
		t.Errorf("Expected length 4, got %d", g.Length())
	}

	if got := g.Step(); got != OutcomeGameOver {
		t.Errorf("Next step should hit the wall, got %v", got)
	}
}

func TestNewBoardTooSmallPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(3, 1) should panic")
		}
	}()
	NewBoard(3, 1, rand.New(rand.NewSource(14)))
}

func TestLengthGrowsOnlyOnFood(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	g := newTestGame(15)
	dirs := []Direction{DirUp, DirRight, DirDown, DirLeft}

	for i := 0; i < 2000 && g.Running(); i++ {
		if i%3 == 0 {
			g.Turn(dirs[rng.Intn(len(dirs))])
		}
		before := g.Length()
		switch g.Step() {
		case OutcomeAte:
			if g.Length() != before+1 {
				t.Fatalf("tick %d: ate but length %d -> %d", i, before, g.Length())
			}
		case OutcomeMoved, OutcomeGameOver:
			if g.Length() != before {
				t.Fatalf("tick %d: length changed %d -> %d without food", i, before, g.Length())
			}
		}
		if g.Running() && g.HasFood() && g.occupies(g.Food()) {
			t.Fatalf("tick %d: food %v on body", i, g.Food())
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 100; i++ {
		switch i {
		case 5:
			g1.Turn(DirDown)
			g2.Turn(DirDown)
		case 9:
			g1.Turn(DirLeft)
			g2.Turn(DirLeft)
		}
		g1.Step()
		g2.Step()
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestRenderDrawsBoard(t *testing.T) {
	g := newTestGame(16)
	g.food = core.Point{X: 0, Y: 0}
	screen := NewFrameScreen(g)

	g.Render(screen)

	if screen.Width() != BoardWidth+2 || screen.Height() != BoardHeight+2 {
		t.Fatalf("Screen size = %dx%d", screen.Width(), screen.Height())
	}
	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{BoardWidth + 1, BoardHeight + 1, '┘'},
		{1, 1, GlyphFood},
		{21, 11, GlyphHead},
		{20, 11, GlyphBody},
		{19, 11, GlyphBody},
		{18, 11, ' '},
	}
	for _, c := range checks {
		if got := screen.Get(c.x, c.y); got != c.want {
			t.Errorf("Cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if screen.GetCell(21, 11).Color != core.ColorBrightGreen {
		t.Errorf("Head should be bright green")
	}
}
