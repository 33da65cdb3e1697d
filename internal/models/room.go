package models

import "fmt"

// RoomType 定義房間主題的類型
type RoomType string

const (
	RoomTypeGeneral    RoomType = "general"
	RoomTypeConfession RoomType = "confession"
	RoomTypeRant       RoomType = "rant"
)

// RoomKey 以學年、科系、班級與房間類型組成聊天室的複合鍵
// 房間不持久化，只在有連線加入時作為成員集合存在
type RoomKey struct {
	Year     string `json:"year"`
	Branch   string `json:"branch"`
	Division string `json:"division"`
	RoomType string `json:"roomType"`
}

// String 將複合鍵渲染為單一字串，例如 "2nd-CS-A-general"
func (k RoomKey) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", k.Year, k.Branch, k.Division, k.RoomType)
}

// Valid 檢查複合鍵的每個欄位都不為空
func (k RoomKey) Valid() bool {
	return k.Year != "" && k.Branch != "" && k.Division != "" && k.RoomType != ""
}
