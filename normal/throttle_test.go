package normal

import "testing"

func TestThrottleAllowsFirstAndEveryPeriodth(t *testing.T) {
	th := NewThrottle(3)
	var allowed []int
	for i := 0; i < 9; i++ {
		if th.Allow() {
			allowed = append(allowed, i)
		}
	}
	want := []int{0, 3, 6}
	if len(allowed) != len(want) {
		t.Fatalf("Allow() fired at %v, want %v", allowed, want)
	}
	for i := range want {
		if allowed[i] != want[i] {
			t.Fatalf("Allow() fired at %v, want %v", allowed, want)
		}
	}
}
