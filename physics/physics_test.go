package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

func TestStepTarget(t *testing.T) {
	target := &component.Target{
		Kinetic:       component.Kinetic{Pos: vmath.V(100, 200), Vel: vmath.V(2, -15)},
		RotationSpeed: 0.05,
		Radius:        40,
	}

	StepTarget(target)

	wantVel := vmath.V(2, -15+parameter.TargetGravity)
	if target.Vel != wantVel {
		t.Errorf("Vel = %v, want %v", target.Vel, wantVel)
	}
	wantPos := vmath.V(102, 200-15+parameter.TargetGravity)
	if target.Pos != wantPos {
		t.Errorf("Pos = %v, want %v", target.Pos, wantPos)
	}
	if math.Abs(target.Rotation-0.05) > 1e-12 {
		t.Errorf("Rotation = %v, want 0.05", target.Rotation)
	}
}

func TestEscaped(t *testing.T) {
	tests := []struct {
		y    float64
		want bool
	}{
		{500, false},
		{540, false}, // exactly height + radius is still on the surface
		{540.01, true},
	}
	for _, tt := range tests {
		target := &component.Target{Kinetic: component.Kinetic{Pos: vmath.V(0, tt.y)}, Radius: 40}
		if got := Escaped(target, 500); got != tt.want {
			t.Errorf("Escaped(y=%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestSampleLaunchBounds(t *testing.T) {
	src := vmath.NewFastRand(99)
	s := Surface{W: 1280, H: 720}
	counts := map[LaunchKind]int{}

	for i := 0; i < 5000; i++ {
		l := SampleLaunch(src, s, 50)
		counts[l.Kind]++

		if l.Vel.Y < -20 || l.Vel.Y >= -15 {
			t.Fatalf("vy = %v, want [-20, -15)", l.Vel.Y)
		}
		if l.Pos.Y != s.H-parameter.TargetLaunchInset {
			t.Fatalf("launch y = %v, want %v", l.Pos.Y, s.H-parameter.TargetLaunchInset)
		}

		switch l.Kind {
		case LaunchLeft:
			if l.Pos.X != 50 || l.Vel.X < 2 || l.Vel.X >= 3 {
				t.Fatalf("left launch = %+v", l)
			}
		case LaunchRight:
			if l.Pos.X != s.W-50 || l.Vel.X > -2 || l.Vel.X <= -3 {
				t.Fatalf("right launch = %+v", l)
			}
		case LaunchCenter:
			if math.Abs(l.Vel.X) > parameter.TargetCenterJitter/2 {
				t.Fatalf("center launch vx = %v", l.Vel.X)
			}
		}
	}

	center := float64(counts[LaunchCenter]) / 5000
	if center < 0.17 || center > 0.23 {
		t.Errorf("center launch share = %.3f, want ~0.20", center)
	}
	if counts[LaunchLeft] == 0 || counts[LaunchRight] == 0 {
		t.Errorf("edge launches not split: %v", counts)
	}
}

func TestSurfaceReady(t *testing.T) {
	if (Surface{}).Ready() {
		t.Error("zero surface reported ready")
	}
	if !(Surface{W: 1, H: 1}).Ready() {
		t.Error("sized surface reported not ready")
	}
}
