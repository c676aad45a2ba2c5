package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/movrin/wavefront/bfs"
)

// TestReconstructPath_Basic walks the parent table of the shared fixture.
func TestReconstructPath_Basic(t *testing.T) {
	parent := []int{-1, 0, 0, 1, 2, -1, -1, -1}

	path, err := bfs.ReconstructPath(parent, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("path 0→4 = %v; want %v", path, want)
	}

	path, err = bfs.ReconstructPath(parent, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("path 0→3 = %v; want %v", path, want)
	}
}

// TestReconstructPath_StartEqualsEnd returns the single-vertex path.
func TestReconstructPath_StartEqualsEnd(t *testing.T) {
	parent := []int{-1, 0}
	path, err := bfs.ReconstructPath(parent, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0}; !reflect.DeepEqual(path, want) {
		t.Errorf("path 0→0 = %v; want %v", path, want)
	}
}

// TestReconstructPath_Unreachable yields an empty path and no error.
func TestReconstructPath_Unreachable(t *testing.T) {
	parent := []int{-1, 0, 0, 1, 2, -1, -1, -1}
	path, err := bfs.ReconstructPath(parent, 0, 7)
	if err != nil {
		t.Fatalf("unreachable end must not error, got %v", err)
	}
	if len(path) != 0 {
		t.Errorf("path 0→7 = %v; want empty", path)
	}

	// A walk terminating at a different root is also "unreachable".
	other := []int{-1, -1, 1}
	path, err = bfs.ReconstructPath(other, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Errorf("path rooted elsewhere = %v; want empty", path)
	}
}

// TestReconstructPath_Range rejects out-of-range endpoints, including every
// index on an empty table.
func TestReconstructPath_Range(t *testing.T) {
	parent := []int{-1, 0}
	if _, err := bfs.ReconstructPath(parent, -1, 1); !errors.Is(err, bfs.ErrVertexRange) {
		t.Errorf("negative start: want ErrVertexRange, got %v", err)
	}
	if _, err := bfs.ReconstructPath(parent, 0, 2); !errors.Is(err, bfs.ErrVertexRange) {
		t.Errorf("end == len: want ErrVertexRange, got %v", err)
	}
	if _, err := bfs.ReconstructPath(nil, 0, 0); !errors.Is(err, bfs.ErrVertexRange) {
		t.Errorf("empty table: want ErrVertexRange, got %v", err)
	}
}

// TestReconstructPath_MalformedTables terminates on cyclic or wild links
// instead of panicking or spinning.
func TestReconstructPath_MalformedTables(t *testing.T) {
	cyclic := []int{1, 0}
	path, err := bfs.ReconstructPath(cyclic, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Errorf("cyclic table: got %v; want empty", path)
	}

	wild := []int{-1, 9}
	if path, _ := bfs.ReconstructPath(wild, 0, 1); len(path) != 0 {
		t.Errorf("out-of-range link: got %v; want empty", path)
	}
	negative := []int{-1, -9}
	if path, _ := bfs.ReconstructPath(negative, 0, 1); len(path) != 0 {
		t.Errorf("negative link: got %v; want empty", path)
	}
}

// TestResult_PathTo reconstructs paths straight from a traversal.
func TestResult_PathTo(t *testing.T) {
	g := buildTwoComponents(t)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	path, err := res.PathTo(4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}

	path, err = res.PathTo(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Errorf("PathTo(7) = %v; want empty", path)
	}

	if _, err = res.PathTo(8); !errors.Is(err, bfs.ErrVertexRange) {
		t.Errorf("PathTo(8): want ErrVertexRange, got %v", err)
	}
}
