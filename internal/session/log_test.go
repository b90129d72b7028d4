package session

import (
	"testing"

	"github.com/diogo/docchat/internal/models"
)

func TestLog_AppendPreservesOrder(t *testing.T) {
	log := NewLog()

	first := models.NewUserMessage("first")
	second := models.NewBotMessage("second")
	third := models.NewUserMessage("third")

	log.Append(first)
	log.Append(second)
	log.Append(third)

	snapshot := log.Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(snapshot))
	}

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if snapshot[i].Content != want {
			t.Errorf("message %d: expected %q, got %q", i, want, snapshot[i].Content)
		}
	}
}

func TestLog_ReplaceKeepsOneMessagePerID(t *testing.T) {
	log := NewLog()

	bot := models.NewBotMessage("He")
	log.Append(models.NewUserMessage("Hello"))
	log.Append(bot)

	for _, prefix := range []string{"Hel", "Hell", "Hello"} {
		bot.Content = prefix
		log.Replace(bot.ID, bot)
	}

	snapshot := log.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("Expected 2 messages after repeated Replace, got %d", len(snapshot))
	}

	count := 0
	for _, m := range snapshot {
		if m.ID == bot.ID {
			count++
			if m.Content != "Hello" {
				t.Errorf("Expected final content 'Hello', got %q", m.Content)
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one message with the bot ID, got %d", count)
	}
}

func TestLog_ReplaceMovesToEnd(t *testing.T) {
	log := NewLog()

	bot := models.NewBotMessage("partial")
	log.Append(bot)
	log.Append(models.NewUserMessage("later"))

	bot.Content = "partial more"
	log.Replace(bot.ID, bot)

	snapshot := log.Snapshot()
	if snapshot[len(snapshot)-1].ID != bot.ID {
		t.Error("replaced message should move to the end of the log")
	}
}

func TestLog_ReplaceUnknownIDAppends(t *testing.T) {
	log := NewLog()

	msg := models.NewBotMessage("fresh")
	log.Replace(msg.ID, msg)

	if log.Len() != 1 {
		t.Fatalf("Expected 1 message, got %d", log.Len())
	}
}

func TestLog_SnapshotIsACopy(t *testing.T) {
	log := NewLog()
	log.Append(models.NewUserMessage("original"))

	snapshot := log.Snapshot()
	snapshot[0].Content = "mutated"

	if log.Snapshot()[0].Content != "original" {
		t.Error("mutating a snapshot must not affect the log")
	}
}
