package geometry

import (
	"testing"

	"github.com/soniakeys/unit"
)

func TestMatrixIdentity(t *testing.T) {
	v := NewVector3(1, 2, 3)
	if Identity().MulVec(v) != v {
		t.Errorf("Identity failed: expected %v, got %v", v, Identity().MulVec(v))
	}
}

func TestMatrixRotationZ(t *testing.T) {
	rot := RotationZ(unit.AngleFromDeg(90))
	result := rot.MulVec(NewVector3(1, 0, 0))

	expected := NewVector3(0, 1, 0)
	if result.Distance(expected) > 1e-12 {
		t.Errorf("RotationZ failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixRotationX(t *testing.T) {
	rot := RotationX(unit.AngleFromDeg(90))
	result := rot.MulVec(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result.Distance(expected) > 1e-12 {
		t.Errorf("RotationX failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixRotationY(t *testing.T) {
	rot := RotationY(unit.AngleFromDeg(90))
	result := rot.MulVec(NewVector3(0, 0, 1))

	expected := NewVector3(1, 0, 0)
	if result.Distance(expected) > 1e-12 {
		t.Errorf("RotationY failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixTransposeInverts(t *testing.T) {
	rot := RotationX(unit.AngleFromDeg(30)).Mul(RotationZ(unit.AngleFromDeg(-75)))
	v := NewVector3(3, -1, 2)

	result := rot.Transpose().MulVec(rot.MulVec(v))
	if result.Distance(v) > 1e-12 {
		t.Errorf("Transpose failed: expected %v, got %v", v, result)
	}
}
