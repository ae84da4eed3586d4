package utils

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wantX  float64
		wantY  float64
		wantOK bool
	}{
		{"零向量", 0, 0, 0, 0, false},
		{"水平", 5, 0, 1, 0, true},
		{"对角线", 1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2, true},
		{"负方向", 0, -3, 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := Normalize(tt.x, tt.y)
			if ok != tt.wantOK || math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Normalize(%v, %v) = (%v, %v, %v), 期望 (%v, %v, %v)",
					tt.x, tt.y, x, y, ok, tt.wantX, tt.wantY, tt.wantOK)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	x, y := Rotate(1, 0, 90)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("Rotate(1, 0, 90) = (%v, %v), 期望 (0, 1)", x, y)
	}
	x, y = Rotate(1, 0, -15)
	if math.Abs(Length(x, y)-1) > 1e-9 || y >= 0 {
		t.Errorf("Rotate(1, 0, -15) = (%v, %v)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp 返回值错误")
	}
}

func TestPointInRect(t *testing.T) {
	if !PointInRect(5, 5, 0, 0, 10, 10) {
		t.Error("(5, 5) 应在矩形内")
	}
	if PointInRect(10, 5, 0, 0, 10, 10) {
		t.Error("右边缘不属于矩形")
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           bool
	}{
		{"穿过中心", -100, 0, 100, 0, true},
		{"终点落在矩形内", -100, 0, 0, 0, true},
		{"在矩形前停止", -100, 0, -20, 0, false},
		{"平行偏离", -100, 20, 100, 20, false},
		{"对角线穿过", -50, -50, 50, 50, true},
		{"竖直穿过", 0, -100, 0, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentIntersectsRect(tt.x0, tt.y0, tt.x1, tt.y1, 0, 0, 20, 20)
			if got != tt.want {
				t.Errorf("SegmentIntersectsRect = %v, 期望 %v", got, tt.want)
			}
		})
	}
}
