package core

import "testing"

func TestCoordAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected Coord
	}{
		{"zero", C(0, 0), C(0, 0), C(0, 0)},
		{"positive", C(2, 3), C(1, 1), C(3, 4)},
		{"negative step", C(0, 0), C(-1, 0), C(-1, 0)},
		{"mixed", C(5, -2), C(-3, 7), C(2, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
			// Addition is commutative
			if tc.b.Add(tc.a) != tc.expected {
				t.Errorf("Add() (reversed) = %v, expected %v", tc.b.Add(tc.a), tc.expected)
			}
		})
	}
}

func TestCoordAddDoesNotMutate(t *testing.T) {
	a := C(1, 2)
	_ = a.Add(C(5, 5))
	if a != C(1, 2) {
		t.Errorf("Add mutated receiver: %v", a)
	}
}

func TestCoordEqual(t *testing.T) {
	if !C(3, 4).Equal(C(3, 4)) {
		t.Error("C(3,4) should equal C(3,4)")
	}
	if C(3, 4).Equal(C(4, 3)) {
		t.Error("C(3,4) should not equal C(4,3)")
	}
	if C(0, 1).Equal(C(0, 2)) {
		t.Error("C(0,1) should not equal C(0,2)")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Coord
	}{
		{DirUp, C(-1, 0)},
		{DirDown, C(1, 0)},
		{DirLeft, C(0, -1)},
		{DirRight, C(0, 1)},
		{Direction(42), C(0, 0)},
		{Direction(-1), C(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("%v.Delta() = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirUp.String() != "up" || DirRight.String() != "right" {
		t.Errorf("unexpected names: %s, %s", DirUp, DirRight)
	}
	if Direction(9).String() != "unknown" {
		t.Errorf("unknown direction should render as 'unknown', got %s", Direction(9))
	}
}
