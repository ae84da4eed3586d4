package game

// RunSaveVersion 存档版本号
// 当 RunState 结构发生不兼容变更时递增
const RunSaveVersion = 2

// RunSaveData 存档数据结构
//
// 只保存可恢复的进度：关卡、升级点、模式（含禅模式批次进度）、玩家属性和技能进度。
// 敌人和投射物不保存，继续游戏时从当前关卡重新生成一波。
// 不记录保存时间，相同的 RunState 总是得到相同的字节。
type RunSaveData struct {
	Version int
	Run     RunState
}
