package geo

import (
	"sync"
	"testing"
)

func TestProgress(t *testing.T) {
	p := NewProgress(1000)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Add(LayerProgressErosion, 100)
		}()
	}
	wg.Wait()

	if got := p.Get(LayerProgressErosion); got != 1000 {
		t.Errorf("Get = %d, want 1000", got)
	}
	if got := p.Fraction(LayerProgressErosion); got != 1 {
		t.Errorf("Fraction = %v, want 1", got)
	}
	if got := p.Fraction(LayerProgressHumidity); got != 0 {
		t.Errorf("untouched layer Fraction = %v, want 0", got)
	}
	if p.Done() {
		t.Error("Done should be false with incomplete layers")
	}

	p.Add(LayerProgressErosion, 500)
	if got := p.Fraction(LayerProgressErosion); got != 1 {
		t.Errorf("Fraction should be capped at 1, got %v", got)
	}

	p.Reset()
	if got := p.Get(LayerProgressErosion); got != 0 {
		t.Errorf("after Reset Get = %d", got)
	}
}

func TestProgressZeroTotal(t *testing.T) {
	p := NewProgress(0)
	p.Add(LayerProgressResources, 10)
	if got := p.Fraction(LayerProgressResources); got != 0 {
		t.Errorf("Fraction = %v, want 0", got)
	}
	var nilProgress *Progress
	nilProgress.Add(LayerProgressResources, 1) // must not panic
}
