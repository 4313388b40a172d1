package procedural

import (
	"math"
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Vec2
		want Vec2
	}{
		{"identity", Identity(), V2(3, 4), V2(3, 4)},
		{"translate", Translate(10, -2), V2(1, 1), V2(11, -1)},
		{"scale", Scale(2, 3), V2(1, 1), V2(2, 3)},
		{"mirror x", Scale(-1, 1), V2(2, 5), V2(-2, 5)},
		{"rotate 90deg", Rotate(math.Pi / 2), V2(1, 0), V2(0, 1)},
		{"rotate 180deg", Rotate(math.Pi), V2(1, 2), V2(-1, -2)},
		{"rotate then translate", Translate(1, 0).Multiply(Rotate(math.Pi / 2)), V2(1, 0), V2(1, 1)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 1)), V2(0, 0), V2(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.Approx(tt.want, 1e-5) {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_TransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 1))
	if got := m.TransformVector(V2(1, 1)); got != V2(2, 1) {
		t.Errorf("TransformVector = %v, want (2, 1)", got)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float32
	}{
		{"identity", Identity(), 1},
		{"translation", Translate(5, 6), 1},
		{"scale", Scale(2, 3), 6},
		{"mirror", Scale(-1, 1), -1},
		{"rotation", Rotate(0.7), 1},
		{"mirror then rotate", Rotate(1).Multiply(Scale(1, -2)), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"translation", Translate(1, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}
