package service

import "sync"

// RoomRegistry 維護 roomKey 到在場連線集合的映射
// 成員集合只能透過 Join / Leave 修改，
// 回傳的人數永遠是鎖內與成員快照一起計算的，不會數到一半
type RoomRegistry struct {
	mu    sync.Mutex
	rooms map[string]map[string]*Client
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]map[string]*Client),
	}
}

// Join 將連線加入房間，回傳加入後的人數與成員快照（含新成員）
func (r *RoomRegistry) Join(room string, client *Client) (int, []*Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[room] == nil {
		r.rooms[room] = make(map[string]*Client)
	}
	r.rooms[room][client.ID] = client

	return len(r.rooms[room]), r.snapshot(room)
}

// Leave 將連線移出房間，回傳剩餘人數與剩餘成員快照
// 房間空了就整個移除，不留空集合
func (r *RoomRegistry) Leave(room, connID string) (int, []*Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		return 0, nil
	}

	delete(members, connID)
	if len(members) == 0 {
		delete(r.rooms, room)
		return 0, nil
	}

	return len(members), r.snapshot(room)
}

// Members 回傳房間目前成員的快照
func (r *RoomRegistry) Members(room string) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(room)
}

// Count 回傳房間目前的人數
func (r *RoomRegistry) Count(room string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms[room])
}

// Rooms 回傳目前有人的房間數量
func (r *RoomRegistry) Rooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// snapshot 必須在持鎖時呼叫
func (r *RoomRegistry) snapshot(room string) []*Client {
	members := r.rooms[room]
	if len(members) == 0 {
		return nil
	}
	clients := make([]*Client, 0, len(members))
	for _, c := range members {
		clients = append(clients, c)
	}
	return clients
}
