package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college_chat/internal/models"
)

func newAdminFixture(t *testing.T) (*AdminService, *fakeUserRepo, *fakeMessageRepo) {
	t.Helper()
	users := newFakeUserRepo()
	messages := newFakeMessageRepo()
	return NewAdminService(users, messages), users, messages
}

func seedMessage(t *testing.T, repo *fakeMessageRepo, user *models.User, room models.RoomKey, body string, ts time.Time) *models.Message {
	t.Helper()
	message := &models.Message{
		Room:           room.String(),
		Year:           room.Year,
		Branch:         room.Branch,
		Division:       room.Division,
		RoomType:       room.RoomType,
		UserID:         user.ID,
		SenderPhone:    user.PhoneNumber,
		SenderNickname: user.Nickname,
		SenderAvatar:   user.Avatar,
		Body:           body,
		Timestamp:      ts,
	}
	require.NoError(t, repo.Create(message))
	return message
}

func TestAdminStats(t *testing.T) {
	svc, users, messages := newAdminFixture(t)
	room := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "general"}

	online := seedUser(t, users, "9000000001", "CoolTiger1", "🦊")
	offline := seedUser(t, users, "9000000002", "SwiftPanda2", "🐼")
	require.NoError(t, users.SetOnline(online.ID, true))
	require.NoError(t, users.SetOnline(offline.ID, false))
	seedMessage(t, messages, online, room, "hi", time.Now())

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.OnlineUsers)
	assert.Equal(t, int64(1), stats.TotalMessages)
}

func TestAdminRecentMessagesByRoom(t *testing.T) {
	svc, users, messages := newAdminFixture(t)
	general := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "general"}
	rant := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "rant"}

	user := seedUser(t, users, "9000000001", "CoolTiger1", "🦊")
	seedMessage(t, messages, user, general, "in general", time.Now())
	seedMessage(t, messages, user, rant, "in rant", time.Now())

	all, err := svc.RecentMessages("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.RecentMessages(rant.String())
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "in rant", scoped[0].Body)
}

func TestAdminUserByPhone(t *testing.T) {
	svc, users, messages := newAdminFixture(t)
	room := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "general"}

	user := seedUser(t, users, "9000000001", "CoolTiger1", "🦊")
	seedMessage(t, messages, user, room, "hello", time.Now())

	found, sent, err := svc.UserByPhone("9000000001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.Len(t, sent, 1)
	assert.Equal(t, "hello", sent[0].Body)

	_, _, err = svc.UserByPhone("9999999999")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAdminClearMessages(t *testing.T) {
	svc, users, messages := newAdminFixture(t)
	general := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "general"}
	rant := models.RoomKey{Year: "2nd", Branch: "CS", Division: "A", RoomType: "rant"}

	user := seedUser(t, users, "9000000001", "CoolTiger1", "🦊")
	seedMessage(t, messages, user, general, "old", time.Now().AddDate(0, 0, -10))
	seedMessage(t, messages, user, general, "new", time.Now())
	seedMessage(t, messages, user, rant, "rant", time.Now())

	// 依房間類型清理
	deleted, err := svc.ClearMessagesByRoomType("rant")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// 依訊息年齡清理
	deleted, err = svc.ClearMessagesOlderThan(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// 全部清空
	deleted, err = svc.ClearAllMessages()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := messages.CountAll()
	require.NoError(t, err)
	assert.Zero(t, count)
}
