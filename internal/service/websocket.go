package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"college_chat/internal/models"
	"college_chat/internal/repository"
)

// Client 代表一條 WebSocket 連線的會話狀態
// Room 與快照欄位只由該連線自己的讀取迴圈修改，
// 同一條連線的事件因此天然按提交順序處理
type Client struct {
	ID       string          // 連線 ID，每次連線隨機產生
	Conn     *websocket.Conn // WebSocket 連線
	UserID   uint            // 綁定的用戶 ID，由會話 token 決定
	Room     string          // 目前所在房間的複合鍵，未加入時為空字串
	RoomKey  models.RoomKey
	Nickname string // 加入房間時快取的顯示暱稱
	Avatar   string // 加入房間時快取的顯示頭像

	SendChan chan *ServerEvent // 出站事件佇列，滿了視為連線失效
	done     chan struct{}     // 斷線清理完成時關閉
	once     sync.Once         // 確保斷線清理恰好執行一次
}

// WebSocketManager 管理所有連線、房間在場狀態與訊息事件的分發
type WebSocketManager struct {
	registry *RoomRegistry
	typing   *TypingTracker
	chat     *ChatService
	userRepo repository.UserRepository

	recentLimit int

	clientsMux sync.RWMutex
	clients    map[string]*Client // 連線 ID -> 會話
}

func NewWebSocketManager(chat *ChatService, userRepo repository.UserRepository, recentLimit int) *WebSocketManager {
	if recentLimit <= 0 {
		recentLimit = 50
	}
	return &WebSocketManager{
		registry:    NewRoomRegistry(),
		typing:      NewTypingTracker(),
		chat:        chat,
		userRepo:    userRepo,
		recentLimit: recentLimit,
		clients:     make(map[string]*Client),
	}
}

// Registry 暴露在場狀態的查詢，成員集合本身無法從外部修改
func (m *WebSocketManager) Registry() *RoomRegistry {
	return m.registry
}

// Typing 暴露輸入中狀態的查詢
func (m *WebSocketManager) Typing() *TypingTracker {
	return m.typing
}

// HandleConnection 處理一條新的 WebSocket 連線，直到連線關閉才返回
func (m *WebSocketManager) HandleConnection(conn *websocket.Conn, userID uint) {
	client := &Client{
		ID:       uuid.New().String(),
		Conn:     conn,
		UserID:   userID,
		SendChan: make(chan *ServerEvent, 256),
		done:     make(chan struct{}),
	}

	m.clientsMux.Lock()
	m.clients[client.ID] = client
	total := len(m.clients)
	m.clientsMux.Unlock()
	log.Printf("websocket connected: conn=%s user=%d total=%d", client.ID, userID, total)

	defer m.Disconnect(client)

	go m.writePump(client)
	m.readPump(client)
}

// Disconnect 是無條件的終止訊號：撤回在場與輸入中狀態、
// 標記用戶離線並丟棄會話；重複送達的斷線訊號只會清理一次
func (m *WebSocketManager) Disconnect(client *Client) {
	client.once.Do(func() {
		m.handleLeave(client)

		if client.UserID != 0 {
			if err := m.userRepo.SetOnline(client.UserID, false); err != nil {
				log.Printf("mark user %d offline: %v", client.UserID, err)
			}
		}

		m.clientsMux.Lock()
		delete(m.clients, client.ID)
		remaining := len(m.clients)
		m.clientsMux.Unlock()

		close(client.done)
		client.Conn.Close()
		log.Printf("websocket disconnected: conn=%s total=%d", client.ID, remaining)
	})
}

// readPump 持續讀取並依序處理該連線的事件
func (m *WebSocketManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close: %v", err)
			}
			return
		}
		m.dispatch(client, raw)
	}
}

// writePump 負責把出站佇列寫回連線，並定期發送心跳
func (m *WebSocketManager) writePump(client *Client) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteJSON(event); err != nil {
				return
			}

		case <-client.done:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// dispatch 解析事件封包並分派給對應的處理函數
// 處理失敗只通知發起的連線，不影響其他人的會話
func (m *WebSocketManager) dispatch(client *Client, raw []byte) {
	var event ClientEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		m.sendError(client, ErrInvalidPayload.Error())
		return
	}

	var err error
	switch event.Type {
	case EventJoinRoom:
		err = m.handleJoin(client, event.Data)
	case EventSendMessage:
		err = m.handleSend(client, event.Data)
	case EventDeleteMessage:
		err = m.handleDelete(client, event.Data)
	case EventLeaveRoom:
		m.handleLeave(client)
	case EventTypingStart:
		m.handleTyping(client, true)
	case EventTypingStop:
		m.handleTyping(client, false)
	default:
		m.sendError(client, "unknown event: "+event.Type)
	}

	if err != nil {
		if IsDomainError(err) {
			m.sendError(client, err.Error())
			return
		}
		// 持久層錯誤集中記錄，對客戶端只給一般化的失敗訊息
		log.Printf("conn=%s event=%s: %v", client.ID, event.Type, err)
		m.sendError(client, "something went wrong, please try again")
	}
}

// handleJoin 讓連線加入一個房間
// 已在別的房間時先做等價的離開；用戶目錄解析失敗時連線維持在無房間狀態
func (m *WebSocketManager) handleJoin(client *Client, data json.RawMessage) error {
	var payload JoinRoomData
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidPayload
	}

	key := models.RoomKey{
		Year:     payload.Year,
		Branch:   payload.Branch,
		Division: payload.Division,
		RoomType: payload.RoomType,
	}
	if !key.Valid() {
		return ErrInvalidRoom
	}
	// 加入房間的身份必須與會話 token 綁定的用戶一致
	if payload.UserID != 0 && payload.UserID != client.UserID {
		return ErrNotAuthorized
	}

	m.handleLeave(client)

	user, err := m.userRepo.FindByID(client.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnknownUser
	}
	if err != nil {
		return fmt.Errorf("load user %d: %w", client.UserID, err)
	}

	client.Room = key.String()
	client.RoomKey = key
	client.Nickname = user.Nickname
	client.Avatar = user.Avatar

	if err := m.userRepo.SetOnline(user.ID, true); err != nil {
		log.Printf("mark user %d online: %v", user.ID, err)
	}

	count, members := m.registry.Join(client.Room, client)
	m.deliverAll(members, &ServerEvent{
		Type: EventUserJoined,
		Data: PresenceData{Message: "Someone joined the chat! 🎉", Online: count},
	}, "")

	// 最近的歷史訊息只回給發起加入的連線
	// 載入失敗不撤銷已生效的加入，僅對本人回報
	messages, err := m.chat.RecentMessages(client.Room, m.recentLimit)
	if err != nil {
		return err
	}
	m.deliver(client, &ServerEvent{Type: EventLoadMessages, Data: toMessageList(messages)})
	return nil
}

// handleLeave 將連線移出目前房間並清掉輸入中條目
// 未加入任何房間時為 no-op
func (m *WebSocketManager) handleLeave(client *Client) {
	if client.Room == "" {
		return
	}

	room := client.Room
	client.Room = ""
	client.RoomKey = models.RoomKey{}

	count, members := m.registry.Leave(room, client.ID)

	// 清掉殘留的輸入中條目，避免指示器卡死
	if entries, removed := m.typing.Stop(room, client.ID); removed {
		m.deliverAll(members, &ServerEvent{
			Type: EventTypingState,
			Data: TypingStateData{Typing: entries},
		}, "")
	}

	m.deliverAll(members, &ServerEvent{
		Type: EventUserLeft,
		Data: PresenceData{Message: "Someone left the chat 👋", Online: count},
	}, "")
}

// handleSend 建立一則訊息並廣播給房間所有成員（含發送者）
// 發送同時視為停止輸入
func (m *WebSocketManager) handleSend(client *Client, data json.RawMessage) error {
	if client.Room == "" {
		return ErrNotInRoom
	}

	var payload SendMessageData
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidPayload
	}

	message, err := m.chat.CreateMessage(client.UserID, client.RoomKey, payload.Message)
	if err != nil {
		return err
	}

	if entries, removed := m.typing.Stop(client.Room, client.ID); removed {
		m.broadcast(client.Room, &ServerEvent{
			Type: EventTypingState,
			Data: TypingStateData{Typing: entries},
		}, client.ID)
	}

	m.broadcast(client.Room, &ServerEvent{
		Type: EventNewMessage,
		Data: toMessageData(message),
	}, "")
	return nil
}

// handleDelete 刪除連線目前用戶自己的一則訊息
// 授權用連線當下的用戶 ID，不用任何快取值
func (m *WebSocketManager) handleDelete(client *Client, data json.RawMessage) error {
	if client.Room == "" {
		return ErrNotInRoom
	}

	var payload DeleteMessageData
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidPayload
	}

	if err := m.chat.DeleteMessage(client.UserID, payload.MessageID); err != nil {
		return err
	}

	m.broadcast(client.Room, &ServerEvent{
		Type: EventMessageDeleted,
		Data: MessageDeletedData{ID: payload.MessageID},
	}, "")
	return nil
}

// handleTyping 更新輸入中狀態並廣播給房間內除了本人以外的成員
func (m *WebSocketManager) handleTyping(client *Client, start bool) {
	if client.Room == "" {
		return
	}

	if start {
		entries := m.typing.Start(client.Room, client.ID, client.Nickname, client.Avatar)
		m.broadcast(client.Room, &ServerEvent{
			Type: EventTypingState,
			Data: TypingStateData{Typing: entries},
		}, client.ID)
		return
	}

	if entries, removed := m.typing.Stop(client.Room, client.ID); removed {
		m.broadcast(client.Room, &ServerEvent{
			Type: EventTypingState,
			Data: TypingStateData{Typing: entries},
		}, client.ID)
	}
}

// broadcast 把事件送往目前在房間內的所有連線
// excludeID 非空時跳過該連線（用於輸入中狀態；訊息與在場事件不排除發送者）
func (m *WebSocketManager) broadcast(room string, event *ServerEvent, excludeID string) {
	m.deliverAll(m.registry.Members(room), event, excludeID)
}

func (m *WebSocketManager) deliverAll(members []*Client, event *ServerEvent, excludeID string) {
	for _, c := range members {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		m.deliver(c, event)
	}
}

// deliver 是逐連線的盡力投遞：佇列滿了就放棄該連線，
// 永不阻塞，也不影響其他連線的投遞
func (m *WebSocketManager) deliver(client *Client, event *ServerEvent) {
	select {
	case client.SendChan <- event:
	default:
		log.Printf("conn=%s send queue full, closing", client.ID)
		client.Conn.Close()
	}
}

// sendError 以私人 error 事件通知發起的連線，永不廣播
func (m *WebSocketManager) sendError(client *Client, message string) {
	m.deliver(client, &ServerEvent{Type: EventError, Data: ErrorData{Message: message}})
}
