package various

import (
	"sync/atomic"
	"testing"
)

func TestForEachRangeCoversAll(t *testing.T) {
	for _, total := range []int{0, 1, 7, 8, 9, 1000} {
		seen := make([]int32, total)
		ForEachRange(total, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, n := range seen {
			if n != 1 {
				t.Fatalf("total=%d: item %d visited %d times", total, i, n)
			}
		}
	}
}

func TestForEachBatch(t *testing.T) {
	var items, batches int64
	ForEachBatch(1000, 64, func(start, end int) {
		if end-start > 64 {
			t.Errorf("batch [%d, %d) larger than 64", start, end)
		}
		atomic.AddInt64(&items, int64(end-start))
		atomic.AddInt64(&batches, 1)
	})
	if items != 1000 {
		t.Errorf("got %d items, want 1000", items)
	}
	if batches < 1000/64 {
		t.Errorf("got %d batches", batches)
	}
}

func TestForEachRangeWorkers(t *testing.T) {
	defer func(n int) { NumWorkers = n }(NumWorkers)
	testCases := []struct {
		workers, cells, wantCalls int
	}{
		{8, 3, 3},
		{8, 100, 8},
		{0, 10, 1},
		{-2, 10, 1},
		{4, 0, 0},
	}
	for _, tc := range testCases {
		NumWorkers = tc.workers
		var calls, items int64
		ForEachRange(tc.cells, func(start, end int) {
			atomic.AddInt64(&calls, 1)
			atomic.AddInt64(&items, int64(end-start))
		})
		if int(calls) != tc.wantCalls || int(items) != tc.cells {
			t.Errorf("%d workers, %d cells: got %d calls over %d cells, want %d calls",
				tc.workers, tc.cells, calls, items, tc.wantCalls)
		}
	}
}

func TestRoundToDecimals(t *testing.T) {
	testCases := []struct {
		v, d, want float64
	}{
		{0.12345, 3, 0.123},
		{-0.4567, 2, -0.46},
		{2.5, 0, 3},
	}
	for _, tc := range testCases {
		if got := RoundToDecimals(tc.v, tc.d); got != tc.want {
			t.Errorf("RoundToDecimals(%v, %v): got %v, want %v", tc.v, tc.d, got, tc.want)
		}
	}
}

func TestIsPointInPolygon(t *testing.T) {
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	testCases := []struct {
		p    [2]float64
		want bool
	}{
		{[2]float64{5, 5}, true},
		{[2]float64{15, 5}, false},
		{[2]float64{-1, -1}, false},
		{[2]float64{9.9, 0.1}, true},
	}
	for _, tc := range testCases {
		if got := IsPointInPolygon(square, tc.p); got != tc.want {
			t.Errorf("IsPointInPolygon(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
