package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPointCloudRejectsEmpty(t *testing.T) {
	_, err := NewPointCloud(nil)
	if !errors.Is(err, ErrEmptyPointCloud) {
		t.Fatalf("NewPointCloud(nil) error = %v, want ErrEmptyPointCloud", err)
	}
}

func TestPointCloudWorldPoint(t *testing.T) {
	pc, err := NewPointCloud([]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}})
	if err != nil {
		t.Fatalf("NewPointCloud() error = %v", err)
	}
	pc.Transform.Position = mgl64.Vec3{0, 0, 10}

	got := pc.WorldPoint(0)
	want := mgl64.Vec3{1, 0, 10}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("WorldPoint(0) = %v, want %v", got, want)
	}
	if pc.Count() != 2 {
		t.Errorf("Count() = %d, want 2", pc.Count())
	}
}
