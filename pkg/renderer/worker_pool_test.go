package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/Lucifier129/go-ray-tracing/pkg/core"
)

func TestSplitSamples(t *testing.T) {
	tests := []struct {
		samples  int
		expected []int
	}{
		{0, nil},
		{1, []int{1}},
		{5, []int{1, 1, 1, 1, 1}},
		{16, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{35, []int{3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
	}

	for _, tt := range tests {
		got := SplitSamples(tt.samples)
		if len(got) != len(tt.expected) {
			t.Fatalf("SplitSamples(%d): expected %v, got %v", tt.samples, tt.expected, got)
		}
		total := 0
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("SplitSamples(%d): expected %v, got %v", tt.samples, tt.expected, got)
				break
			}
			total += got[i]
		}
		if total != tt.samples {
			t.Errorf("SplitSamples(%d) sums to %d", tt.samples, total)
		}
	}
}

func TestTaskSeedDistinct(t *testing.T) {
	seen := make(map[int64]int)
	for id := 0; id < 100; id++ {
		seed := TaskSeed(42, id)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("Tasks %d and %d share seed %d", prev, id, seed)
		}
		seen[seed] = id
	}
	if TaskSeed(42, 3) != TaskSeed(42, 3) {
		t.Error("TaskSeed should be deterministic")
	}
}

func TestRenderParallel_IndependentOfWorkerCount(t *testing.T) {
	rt := newTestRaytracer(20, 10, 4, 5)
	ctx := context.Background()

	single, err := RenderParallel(ctx, rt, 6, 1, 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	many, err := RenderParallel(ctx, rt, 6, 4, 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if single.Samples != 6 || many.Samples != 6 {
		t.Fatalf("Expected 6 samples, got %d and %d", single.Samples, many.Samples)
	}
	for i := range single.Pixels {
		if !single.Pixels[i].Equals(many.Pixels[i]) {
			t.Fatalf("Pixel %d differs: %v vs %v", i, single.Pixels[i], many.Pixels[i])
		}
	}
}

func TestRenderParallel_MatchesSequentialBatches(t *testing.T) {
	rt := newTestRaytracer(6, 4, 1, 3)

	parallel, err := RenderParallel(context.Background(), rt, 3, 2, 9)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Same batches rendered one after another
	sequential := NewBuffer(6, 4)
	for id, n := range SplitSamples(3) {
		batch := rt.RenderSamples(n, core.NewSeededSampler(TaskSeed(9, id)))
		if err := sequential.Add(batch); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	for i := range parallel.Pixels {
		if !parallel.Pixels[i].Equals(sequential.Pixels[i]) {
			t.Fatalf("Pixel %d differs: %v vs %v", i, parallel.Pixels[i], sequential.Pixels[i])
		}
	}
}

func TestRenderParallel_Cancelled(t *testing.T) {
	rt := newTestRaytracer(4, 4, 1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderParallel(ctx, rt, 8, 2, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRenderParallel_ZeroSamples(t *testing.T) {
	rt := newTestRaytracer(3, 2, 1, 2)
	buffer, err := RenderParallel(context.Background(), rt, 0, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buffer.Samples != 0 || len(buffer.Pixels) != 6 {
		t.Errorf("Expected empty 3x2 buffer, got %d samples and %d pixels", buffer.Samples, len(buffer.Pixels))
	}
}
