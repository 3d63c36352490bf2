package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/dicemap/bfs"
	"github.com/katalvlaran/dicemap/board"
)

func mustParse(t testing.TB, text string) *board.Board {
	t.Helper()
	b, err := board.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return b
}

func at(r, c int) board.Coord { return board.Coord{Row: r, Col: c} }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, at(0, 0)); !errors.Is(err, bfs.ErrBoardNil) {
		t.Errorf("nil board: want ErrBoardNil, got %v", err)
	}
	b := mustParse(t, "..")
	if _, err := bfs.BFS(b, at(1, 1)); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	if _, err := bfs.BFS(b, at(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleCell covers the trivial one-cell board.
func TestBFS_SingleCell(t *testing.T) {
	res, err := bfs.BFS(mustParse(t, "."), at(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []board.Coord{at(0, 0)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[at(0, 0)]; d != 0 {
		t.Errorf("Depth = %d; want 0", d)
	}
}

// TestBFS_ReachesAll checks the connectivity property on several valid maps.
func TestBFS_ReachesAll(t *testing.T) {
	maps := []string{
		".. ..\n ...\n  .\n",
		"....\n.  .\n....\n",
		".\n.\n.\n....\n   .\n",
	}
	for _, m := range maps {
		b := mustParse(t, m)
		for _, start := range b.Coords() {
			res, err := bfs.BFS(b, start)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Order) != b.Len() {
				t.Errorf("map %q from %v: reached %d of %d", m, start, len(res.Order), b.Len())
			}
		}
	}
}

// TestBFS_RingDepths measures the shorter way around a ring.
//
//	....
//	.  .
//	....
func TestBFS_RingDepths(t *testing.T) {
	b := mustParse(t, "....\n.  .\n....\n")
	res, err := bfs.BFS(b, at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	want := map[board.Coord]int{
		at(0, 0): 0, at(0, 1): 1, at(0, 2): 2, at(0, 3): 3,
		at(1, 0): 1, at(1, 3): 4,
		at(2, 0): 2, at(2, 1): 3, at(2, 2): 4, at(2, 3): 5,
	}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for a limit and for "no limit".
func TestBFS_MaxDepth(t *testing.T) {
	b := mustParse(t, "....")
	res, _ := bfs.BFS(b, at(0, 0), bfs.WithMaxDepth(2))
	if want := []board.Coord{at(0, 0), at(0, 1), at(0, 2)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=2: got %v; want %v", res.Order, want)
	}
	res, _ = bfs.BFS(b, at(0, 0), bfs.WithMaxDepth(0))
	if len(res.Order) != 4 {
		t.Errorf("MaxDepth=0: got %v; want all 4 cells", res.Order)
	}
}

// TestBFS_PathTo covers a real path, the trivial path and an unreachable target.
func TestBFS_PathTo(t *testing.T) {
	b := mustParse(t, "..\n.\n")
	res, _ := bfs.BFS(b, at(1, 0))
	path, err := res.PathTo(at(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []board.Coord{at(1, 0), at(0, 0), at(0, 1)}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if path, _ := res.PathTo(at(1, 0)); len(path) != 1 {
		t.Errorf("PathTo start = %v; want single cell", path)
	}
	_, err = res.PathTo(at(5, 5))
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS.
func TestBFS_Cancellation(t *testing.T) {
	b := mustParse(t, strings.Repeat(".", 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(b, at(0, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestDistances returns the depth map only.
func TestDistances(t *testing.T) {
	d, err := bfs.Distances(mustParse(t, "..."), at(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	if d[at(0, 0)] != 2 {
		t.Errorf("distance = %d; want 2", d[at(0, 0)])
	}
}
