package services

import (
	"testing"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
)

func newChatService(t *testing.T) (*ChatService, *testServices) {
	t.Helper()
	ts := newTestServices(t)
	return NewChatService(repository.NewChatRepository(ts.db), nil), ts
}

func TestSendMessageRequiresContent(t *testing.T) {
	chat, ts := newChatService(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)

	if _, err := chat.Send(u.ID, "", nil); err == nil {
		t.Fatal("expected error for empty message")
	}
	if _, err := chat.Send(u.ID, "", []string{"https://cdn.test/pic.jpg"}); err != nil {
		t.Fatalf("image-only message: %v", err)
	}
	if _, err := chat.Send(u.ID, "otw", nil); err != nil {
		t.Fatalf("text-only message: %v", err)
	}

	msgs, err := chat.Messages(50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	// เรียงเก่า → ใหม่
	if msgs[0].Body != "" || msgs[1].Body != "otw" {
		t.Errorf("order = [%q %q], want image message first", msgs[0].Body, msgs[1].Body)
	}
}

func TestToggleReactionSelfInverse(t *testing.T) {
	chat, ts := newChatService(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)

	msg, err := chat.Send(u.ID, "otw", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	msg, err = chat.ToggleReaction(msg.ID, u.ID, "🍻")
	if err != nil {
		t.Fatalf("react: %v", err)
	}
	if !msg.Reactions["🍻"].Has(u.ID) {
		t.Fatalf("reactions = %v, want user under 🍻", msg.Reactions)
	}

	msg, err = chat.ToggleReaction(msg.ID, u.ID, "🍻")
	if err != nil {
		t.Fatalf("unreact: %v", err)
	}
	if len(msg.Reactions) != 0 {
		t.Fatalf("reactions = %v, want empty after toggle back", msg.Reactions)
	}

	// ค่าที่ persist ต้องตรงกัน
	got, err := chat.Messages(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || len(got[0].Reactions) != 0 {
		t.Fatalf("persisted reactions = %+v, want empty", got)
	}
}

func TestToggleReactionRequiresSymbol(t *testing.T) {
	chat, ts := newChatService(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)

	msg, err := chat.Send(u.ID, "otw", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := chat.ToggleReaction(msg.ID, u.ID, ""); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}
