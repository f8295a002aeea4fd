package life

import (
	"slices"
	"testing"

	"conway-life/internal/core"
)

func TestBlinkerOscillation(t *testing.T) {
	board := New(5, 5)
	board.Set(1, 2, 1)
	board.Set(2, 2, 1)
	board.Set(3, 2, 1)

	board.Step()
	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			alive := board.Get(r, c) == 1
			if expects[[2]int{r, c}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, alive, !alive)
			}
		}
	}

	board.Step()
	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			alive := board.Get(r, c) == 1
			if expects[[2]int{r, c}] != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", r, c, alive, !alive)
			}
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	for _, size := range []int{4, 5, 9} {
		board := New(size, size)
		board.Set(1, 1, 1)
		board.Set(1, 2, 1)
		board.Set(2, 1, 1)
		board.Set(2, 2, 1)
		want := board.Clone()
		for i := 0; i < 100; i++ {
			board.Step()
		}
		if !board.Equal(want) {
			t.Fatalf("block changed on a %dx%d board", size, size)
		}
	}
}

func TestEmptyBoardIsFixed(t *testing.T) {
	board := New(6, 7)
	board.Step()
	if board.Population() != 0 {
		t.Fatalf("empty board produced %d live cells", board.Population())
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a := New(16, 12)
	a.Reset(42)
	b := a.Clone()
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("boards diverged at generation %d", i+1)
		}
	}
}

func TestStepIsLocal(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		base := New(10, 10)
		base.Reset(seed)
		flipped := base.Clone()
		flipped.Set(7, 7, 1-flipped.Get(7, 7))

		base.Step()
		flipped.Step()
		if base.Get(4, 4) != flipped.Get(4, 4) {
			t.Fatalf("seed %d: flipping (7,7) changed the next state of (4,4)", seed)
		}
	}
}

func TestGliderStopsAtWall(t *testing.T) {
	board := New(8, 8)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		board.Set(p[0], p[1], 1)
	}
	for i := 0; i < 40; i++ {
		board.Step()
	}

	// The glider jams into the bottom-right corner and collapses into a block
	// instead of reappearing at the top-left.
	for r := 0; r < 6; r++ {
		for c := 0; c < 8; c++ {
			if board.Get(r, c) == 1 {
				t.Fatalf("cell (%d,%d) alive; glider wrapped or escaped the corner", r, c)
			}
		}
	}
	if board.Population() != 4 {
		t.Fatalf("expected the glider to end as a 4-cell block, got %d cells", board.Population())
	}
	settled := board.Clone()
	board.Step()
	if !board.Equal(settled) {
		t.Fatal("wreck at the wall should be stable")
	}
}

func TestSetRejectsInvalidValues(t *testing.T) {
	board := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Set with value 2 to panic")
		}
	}()
	board.Set(0, 0, 2)
}

func TestGetOutOfRangePanics(t *testing.T) {
	board := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Get outside the board to panic")
		}
	}()
	board.Get(2, 0)
}

func TestClearAllKeepsDelay(t *testing.T) {
	board := New(3, 3)
	board.Reset(1)
	board.SetDelay(240)
	board.ClearAll()
	if board.Population() != 0 {
		t.Fatal("ClearAll left live cells")
	}
	if board.Delay() != 240 {
		t.Fatalf("ClearAll changed delay to %d", board.Delay())
	}
}

func TestSetDelayRejectsOutOfRange(t *testing.T) {
	board := New(1, 1)
	if board.SetDelay(MinDelay - 1) {
		t.Fatal("delay below MinDelay must be rejected")
	}
	if board.SetDelay(MaxDelay + 1) {
		t.Fatal("delay above MaxDelay must be rejected")
	}
	if board.Delay() != DefaultDelay {
		t.Fatalf("rejected writes changed delay to %d", board.Delay())
	}
	if !board.SetDelay(MaxDelay) || board.Delay() != MaxDelay {
		t.Fatal("MaxDelay itself must be accepted")
	}
}

func TestRandomizePlacesLivingCount(t *testing.T) {
	board := New(8, 8)
	board.Randomize(core.NewRNG(3), 20)
	if board.Population() != 20 {
		t.Fatalf("expected 20 live cells, got %d", board.Population())
	}
}
