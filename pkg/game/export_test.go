package game

import (
	"bytes"
	"encoding/gob"
)

// encodeWithVersion 跳过校验直接编码，用于构造损坏的存档
func encodeWithVersion(rs *RunState, version int) ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(&RunSaveData{Version: version, Run: *rs})
	return buf.Bytes(), err
}
