package board_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labelgrid/board"
)

// benchBoard paints roughly half of an n×n board from a deterministic source.
func benchBoard(b *testing.B, n int) *board.Board {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	brd, err := board.New(n, n)
	if err != nil {
		b.Fatalf("setup board.New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Intn(2) == 1 {
				_ = brd.SetCellActive(x, y, true)
			}
		}
	}

	return brd
}

// BenchmarkRecompute measures the synchronous relabel path on a 500×500
// board, snapshot included.
func BenchmarkRecompute(b *testing.B) {
	brd := benchBoard(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brd.Recompute(); err != nil {
			b.Fatalf("Recompute failed: %v", err)
		}
	}
}

// BenchmarkRecomputeAsync measures the offloaded path end to end: snapshot,
// background relabel, merge, result delivery.
func BenchmarkRecomputeAsync(b *testing.B) {
	brd := benchBoard(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		<-brd.RecomputeAsync()
	}
}
