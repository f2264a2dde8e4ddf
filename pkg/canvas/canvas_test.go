package canvas

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/richard-dennehy/raytracer-go/pkg/math3d"
)

func TestSetGet(t *testing.T) {
	cv := New(10, 20)
	if cv.Width() != 10 || cv.Height() != 20 {
		t.Fatalf("dims = (%d,%d), want (10,20)", cv.Width(), cv.Height())
	}

	red := math3d.NewColor(1, 0, 0)
	cv.Set(2, 3, red)
	if got := cv.Get(2, 3); !got.Equal(red) {
		t.Errorf("Get(2,3) = %v, want %v", got, red)
	}
}

func TestParForEachCoversEveryRow(t *testing.T) {
	cv := New(4, 50)
	var visited int64
	err := cv.ParForEach(context.Background(), func(y int) error {
		atomic.AddInt64(&visited, 1)
		return nil
	})
	if err != nil {
		t.Fatalf("ParForEach: %v", err)
	}
	if visited != 50 {
		t.Errorf("visited %d rows, want 50", visited)
	}
}

func TestParForEachPropagatesError(t *testing.T) {
	cv := New(4, 10)
	boom := errors.New("boom")
	err := cv.ParForEach(context.Background(), func(y int) error {
		if y == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestParForEachRespectsCancellation(t *testing.T) {
	cv := New(4, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cv.ParForEach(ctx, func(y int) error {
		return ctx.Err()
	})
	if err == nil {
		t.Error("expected an error from a pre-canceled context")
	}
}
