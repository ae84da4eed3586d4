package utils

import "math"

// 二维几何工具
//
// 坐标系与屏幕一致：X 向右，Y 向下，角度单位为度。

// Length 返回向量长度
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Normalize 返回单位向量
// 零向量返回 ok=false
func Normalize(x, y float64) (nx, ny float64, ok bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}

// DistanceSquared 两点距离的平方（比较远近时避免开方）
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// Rotate 将向量旋转 degrees 度
func Rotate(x, y, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointInRect 判断点是否落在左上角为 (x, y) 的矩形内
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// SegmentIntersectsRect 判断线段 (x0,y0)-(x1,y1) 是否穿过中心对齐的矩形
// 使用 slab 算法
func SegmentIntersectsRect(x0, y0, x1, y1, cx, cy, w, h float64) bool {
	minX, maxX := cx-w/2, cx+w/2
	minY, maxY := cy-h/2, cy+h/2

	tMin, tMax := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	for _, axis := range [2][4]float64{{x0, dx, minX, maxX}, {y0, dy, minY, maxY}} {
		p, d, lo, hi := axis[0], axis[1], axis[2], axis[3]
		if d == 0 {
			if p < lo || p > hi {
				return false
			}
			continue
		}
		t1 := (lo - p) / d
		t2 := (hi - p) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
