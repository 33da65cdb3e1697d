package service

import "sync"

// TypingEntry 是顯示「正在輸入」用的暱稱與頭像快照
type TypingEntry struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// TypingTracker 維護每個房間內正在輸入的連線集合
// 嚴格以連線 ID 作為鍵去重，兩個暱稱頭像相同的用戶不會互相干擾；
// 條目只存在於記憶體，隨停止、發送、離開或斷線移除
type TypingTracker struct {
	mu    sync.Mutex
	rooms map[string]map[string]TypingEntry
}

func NewTypingTracker() *TypingTracker {
	return &TypingTracker{
		rooms: make(map[string]map[string]TypingEntry),
	}
}

// Start 寫入（或覆寫）該連線的輸入中條目，回傳房間最新的條目快照
func (t *TypingTracker) Start(room, connID, nickname, avatar string) []TypingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rooms[room] == nil {
		t.rooms[room] = make(map[string]TypingEntry)
	}
	t.rooms[room][connID] = TypingEntry{Nickname: nickname, Avatar: avatar}

	return t.snapshot(room)
}

// Stop 移除該連線的條目，回傳最新快照與先前是否存在條目
func (t *TypingTracker) Stop(room, connID string) ([]TypingEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries, ok := t.rooms[room]
	if !ok {
		return nil, false
	}
	if _, exists := entries[connID]; !exists {
		return t.snapshot(room), false
	}

	delete(entries, connID)
	if len(entries) == 0 {
		delete(t.rooms, room)
		return nil, true
	}

	return t.snapshot(room), true
}

// Entries 回傳房間目前輸入中條目的快照，供呈現端自行決定單複數文案
func (t *TypingTracker) Entries(room string) []TypingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot(room)
}

// snapshot 必須在持鎖時呼叫
func (t *TypingTracker) snapshot(room string) []TypingEntry {
	entries := t.rooms[room]
	if len(entries) == 0 {
		return nil
	}
	list := make([]TypingEntry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	return list
}
