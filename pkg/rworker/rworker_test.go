package rworker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestShards(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		workers  int
		expected [][2]int
	}{
		{name: "even", n: 4, workers: 2, expected: [][2]int{{0, 2}, {2, 4}}},
		{name: "uneven", n: 5, workers: 2, expected: [][2]int{{0, 3}, {3, 5}}},
		{name: "more_workers_than_items", n: 2, workers: 8, expected: [][2]int{{0, 1}, {1, 2}}},
		{name: "single", n: 3, workers: 1, expected: [][2]int{{0, 3}}},
		{name: "zero_workers", n: 3, workers: 0, expected: [][2]int{{0, 3}}},
		{name: "empty", n: 0, workers: 4, expected: nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Shards(test.n, test.workers)
			if len(got) != len(test.expected) {
				t.Fatalf("shards got: %v, expected: %v", got, test.expected)
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("shards got: %v, expected: %v", got, test.expected)
				}
			}
		})
	}
}

func TestRun(t *testing.T) {
	out := make([]int, 10)
	err := Run(context.Background(), len(out), 3, func(_ context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = i * i
		}
		return nil
	})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	for i := range out {
		if out[i] != i*i {
			t.Errorf("out[%d] got: %d, expected: %d", i, out[i], i*i)
		}
	}
}

func TestRun_Error(t *testing.T) {
	errShard := errors.New("shard failed")
	var calls int64
	err := Run(context.Background(), 8, 4, func(_ context.Context, lo, _ int) error {
		atomic.AddInt64(&calls, 1)
		if lo == 0 {
			return errShard
		}
		return nil
	})
	if !errors.Is(err, errShard) {
		t.Errorf("run error got: %v, expected: %v", err, errShard)
	}
	if atomic.LoadInt64(&calls) != 4 {
		t.Errorf("shards called got: %d, expected: 4", calls)
	}
}
