package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypingTrackerStartStop(t *testing.T) {
	tracker := NewTypingTracker()
	room := "2nd-CS-A-general"

	entries := tracker.Start(room, "conn-a", "CoolTiger1", "🦊")
	assert.Len(t, entries, 1)

	entries = tracker.Start(room, "conn-b", "SwiftPanda2", "🐼")
	assert.Len(t, entries, 2)

	entries, removed := tracker.Stop(room, "conn-a")
	assert.True(t, removed)
	assert.Len(t, entries, 1)
	assert.Equal(t, "SwiftPanda2", entries[0].Nickname)

	entries, removed = tracker.Stop(room, "conn-b")
	assert.True(t, removed)
	assert.Nil(t, entries)
}

// 重複的 typing-start 不會產生重複條目
func TestTypingTrackerRepeatedStart(t *testing.T) {
	tracker := NewTypingTracker()
	room := "2nd-CS-A-general"

	tracker.Start(room, "conn-a", "CoolTiger1", "🦊")
	tracker.Start(room, "conn-a", "CoolTiger1", "🦊")
	entries := tracker.Start(room, "conn-a", "CoolTiger1", "🦊")

	assert.Len(t, entries, 1)
}

// 去重以連線 ID 為準，暱稱頭像完全相同的兩個用戶互不干擾
func TestTypingTrackerSameDisplayIdentity(t *testing.T) {
	tracker := NewTypingTracker()
	room := "2nd-CS-A-general"

	tracker.Start(room, "conn-a", "CoolTiger1", "🦊")
	entries := tracker.Start(room, "conn-b", "CoolTiger1", "🦊")
	assert.Len(t, entries, 2)

	entries, removed := tracker.Stop(room, "conn-a")
	assert.True(t, removed)
	assert.Len(t, entries, 1)
}

func TestTypingTrackerStopWithoutEntry(t *testing.T) {
	tracker := NewTypingTracker()
	room := "2nd-CS-A-general"

	entries, removed := tracker.Stop(room, "conn-a")
	assert.False(t, removed)
	assert.Nil(t, entries)

	tracker.Start(room, "conn-b", "SwiftPanda2", "🐼")
	entries, removed = tracker.Stop(room, "conn-a")
	assert.False(t, removed)
	assert.Len(t, entries, 1)
}

func TestTypingTrackerRoomsAreIndependent(t *testing.T) {
	tracker := NewTypingTracker()

	tracker.Start("2nd-CS-A-general", "conn-a", "CoolTiger1", "🦊")
	tracker.Start("2nd-CS-B-general", "conn-a", "CoolTiger1", "🦊")

	entries, removed := tracker.Stop("2nd-CS-A-general", "conn-a")
	assert.True(t, removed)
	assert.Nil(t, entries)
	assert.Len(t, tracker.Entries("2nd-CS-B-general"), 1)
}
