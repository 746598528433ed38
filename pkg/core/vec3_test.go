package core

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", a.Cross(b), NewVec3(27, 6, -13)},
		{"cross x y", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()

	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if !vecApproxEqual(n, NewVec3(0.6, 0, 0.8), 1e-12) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", n)
	}
	if v.Length() != 5 {
		t.Errorf("Normalize must not modify the receiver, length is %f", v.Length())
	}
}

func TestVec3_NormalizeZeroIsNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	if !math.IsNaN(n.X) {
		t.Errorf("Expected NaN components for zero vector, got %v", n)
	}
}

func TestVec3_Clamp(t *testing.T) {
	c := NewVec3(-0.5, 0.25, 7).Clamp(0, 1)
	if c != NewVec3(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %v", c)
	}
}

func TestVec_At(t *testing.T) {
	v2 := NewVec2(1, 2)
	v3 := NewVec3(1, 2, 3)
	v4 := NewVec4(1, 2, 3, 4)

	for i := 0; i < 4; i++ {
		if i < 2 && v2.At(i) != float64(i+1) {
			t.Errorf("Vec2.At(%d) = %f", i, v2.At(i))
		}
		if i < 3 && v3.At(i) != float64(i+1) {
			t.Errorf("Vec3.At(%d) = %f", i, v3.At(i))
		}
		if v4.At(i) != float64(i+1) {
			t.Errorf("Vec4.At(%d) = %f", i, v4.At(i))
		}
	}
}

func TestVec_AtOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"vec2", func() { NewVec2(1, 2).At(2) }},
		{"vec3", func() { NewVec3(1, 2, 3).At(3) }},
		{"vec3 negative", func() { NewVec3(1, 2, 3).At(-1) }},
		{"vec4", func() { NewVec4(1, 2, 3, 4).At(4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Expected panic for out-of-range index")
				}
			}()
			tt.fn()
		})
	}
}

func TestVec2Vec4_Arithmetic(t *testing.T) {
	if got := NewVec2(1, 2).Add(NewVec2(3, 4)).Multiply(2); got != NewVec2(8, 12) {
		t.Errorf("Vec2 add/multiply: got %v", got)
	}
	if got := NewVec2(1, 2).Subtract(NewVec2(3, 4)).Dot(NewVec2(1, 1)); got != -4 {
		t.Errorf("Vec2 subtract/dot: got %f", got)
	}
	if got := NewVec4(1, 2, 3, 4).Add(NewVec4(1, 1, 1, 1)).Subtract(NewVec4(0, 0, 0, 1)); got != NewVec4(2, 3, 4, 4) {
		t.Errorf("Vec4 add/subtract: got %v", got)
	}
	if got := NewVec4(1, 2, 3, 4).Multiply(0.5).Dot(NewVec4(2, 2, 2, 2)); got != 10 {
		t.Errorf("Vec4 multiply/dot: got %f", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if p := ray.At(1.5); p != NewVec3(1, 1, -2) {
		t.Errorf("Expected (1, 1, -2), got %v", p)
	}
}
