// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerJustPressed 检查本帧是否刚按下指针（触摸优先，其次鼠标左键）
// 返回是否按下以及按下位置
func PointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// PointerPosition 获取当前指针位置，用于悬停高亮
func PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateDragging 按住移动中
	DragStateDragging
)

// DragInfo 拖拽信息（屏幕坐标）
type DragInfo struct {
	State              DragState
	StartX, StartY     int
	CurrentX, CurrentY int
	TouchID            ebiten.TouchID // -1 表示鼠标
}

// DragStick 虚拟摇杆
//
// 触摸设备上按住屏幕拖动即可控制移动方向：
// 起点为摇杆中心，当前位置相对起点的偏移即为方向。
type DragStick struct {
	info DragInfo
}

// NewDragStick 创建虚拟摇杆
func NewDragStick() *DragStick {
	return &DragStick{info: DragInfo{TouchID: -1}}
}

// Update 更新拖拽状态（每帧调用一次）
// mouse 为 true 时鼠标左键拖动也会驱动摇杆
func (d *DragStick) Update(mouse bool) {
	switch d.info.State {
	case DragStateNone:
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			x, y := ebiten.TouchPosition(ids[0])
			d.begin(x, y, ids[0])
			return
		}
		if mouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			d.begin(x, y, -1)
		}

	case DragStateDragging:
		if d.info.TouchID >= 0 {
			for _, id := range ebiten.AppendTouchIDs(nil) {
				if id == d.info.TouchID {
					d.Move(ebiten.TouchPosition(id))
					return
				}
			}
			d.Reset()
			return
		}
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			d.Reset()
			return
		}
		d.Move(ebiten.CursorPosition())
	}
}

func (d *DragStick) begin(x, y int, id ebiten.TouchID) {
	d.info = DragInfo{
		State:    DragStateDragging,
		StartX:   x,
		StartY:   y,
		CurrentX: x,
		CurrentY: y,
		TouchID:  id,
	}
}

// Move 更新当前位置
func (d *DragStick) Move(x, y int) {
	d.info.CurrentX, d.info.CurrentY = x, y
}

// Reset 重置拖拽状态
func (d *DragStick) Reset() {
	d.info = DragInfo{TouchID: -1}
}

// Info 返回当前拖拽信息
func (d *DragStick) Info() DragInfo {
	return d.info
}

// IsDragging 是否正在拖拽
func (d *DragStick) IsDragging() bool {
	return d.info.State == DragStateDragging
}

// Direction 返回摇杆方向（未归一化）
// 偏移小于 deadZone 像素时视为静止
func (d *DragStick) Direction(deadZone float64) (float64, float64) {
	if !d.IsDragging() {
		return 0, 0
	}
	dx := float64(d.info.CurrentX - d.info.StartX)
	dy := float64(d.info.CurrentY - d.info.StartY)
	if dx*dx+dy*dy < deadZone*deadZone {
		return 0, 0
	}
	return dx, dy
}
