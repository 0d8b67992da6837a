package services

import (
	"testing"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
)

func TestNotificationMarkReadOwnOnly(t *testing.T) {
	ts := newTestServices(t)
	notif := NewNotificationService(repository.NewNotificationRepository(ts.db), nil)

	owner := seedProfile(t, ts.db, "bob", entity.RoleUser)
	other := seedProfile(t, ts.db, "joe", entity.RoleUser)

	n, err := notif.Notify(owner.ID, "Spot tonight", "Rooftop, 9pm")
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	// คนอื่นมา mark ของเราไม่ได้
	if err := notif.MarkRead(n.ID, other.ID); err == nil {
		t.Fatal("expected error when marking someone else's notification")
	}

	if err := notif.MarkRead(n.ID, owner.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	got, err := notif.ListForUser(owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || !got[0].Read {
		t.Fatalf("notifications = %+v, want single read notification", got)
	}
}
