package services

import (
	"testing"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
)

func TestUpsertInvitationIdempotent(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(24*time.Hour))

	// user สลับใจไปมาได้ ทุก state ถึงกันหมด และมีแถวเดียวเสมอ
	for _, status := range []string{
		entity.InvitationConfirmed,
		entity.InvitationDeclined,
		entity.InvitationPending,
		entity.InvitationConfirmed,
	} {
		if _, err := ts.rsvp.Upsert(spot.ID, u.ID, status); err != nil {
			t.Fatalf("upsert %s: %v", status, err)
		}
	}

	invs, err := ts.rsvp.ListBySpot(spot.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(invs) != 1 {
		t.Fatalf("got %d invitation rows, want 1", len(invs))
	}
	if invs[0].Status != entity.InvitationConfirmed {
		t.Errorf("status = %s, want confirmed (last write wins)", invs[0].Status)
	}
}

func TestUpsertInvitationRejectsUnknownStatus(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())

	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, "maybe"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestConfirmBootstrapsPaymentExactlyOnce(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(24*time.Hour))

	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationConfirmed); err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	// admin ติ๊กจ่ายแล้ว
	p := paymentFor(t, ts.db, spot.ID, u.ID)
	if _, err := ts.pay.MarkPaid(p.ID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	// confirm ซ้ำต้องไม่สร้างแถวใหม่ และต้องไม่รีเซ็ตสถานะจ่าย
	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationConfirmed); err != nil {
		t.Fatalf("second confirm: %v", err)
	}

	var count int64
	ts.db.Model(&entity.Payment{}).Where("spot_id = ? AND user_id = ?", spot.ID, u.ID).Count(&count)
	if count != 1 {
		t.Fatalf("got %d payment rows, want exactly 1", count)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).Status; got != entity.PaymentPaid {
		t.Errorf("status = %s, want paid preserved across re-confirm", got)
	}
}

func TestDeclineDoesNotBootstrapPayment(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())

	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationDeclined); err != nil {
		t.Fatalf("decline: %v", err)
	}

	var count int64
	ts.db.Model(&entity.Payment{}).Where("spot_id = ?", spot.ID).Count(&count)
	if count != 0 {
		t.Fatalf("got %d payment rows after decline, want 0", count)
	}
}

// เลือกเครื่องดื่มก่อนค่อย confirm → payment ใหม่ต้อง sync ยอดที่มีอยู่แล้ว
func TestConfirmSyncsPreexistingSelections(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(24*time.Hour))
	brand := seedBrand(t, ts.db, "Kingfisher", 180)

	if _, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert selection: %v", err)
	}

	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 360 {
		t.Fatalf("total = %d, want 360 synced at bootstrap", got)
	}
}

func TestUpdateInvitationStatusByID(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())

	inv, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationPending)
	if err != nil {
		t.Fatalf("seed invitation: %v", err)
	}

	got, err := ts.rsvp.UpdateStatus(inv.ID, entity.InvitationConfirmed)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got.Status != entity.InvitationConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}

	// ทาง id ก็ต้อง bootstrap payment เหมือนกัน
	if p := paymentFor(t, ts.db, spot.ID, u.ID); p.Status != entity.PaymentNotPaid {
		t.Errorf("payment status = %s, want not_paid", p.Status)
	}
}

func TestPaymentUpsertIdempotent(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())

	if _, err := ts.pay.Upsert(spot.ID, u.ID, entity.PaymentNotPaid); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := ts.pay.Upsert(spot.ID, u.ID, entity.PaymentPaid); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	pays, err := ts.pay.ListBySpot(spot.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pays) != 1 {
		t.Fatalf("got %d payment rows, want 1", len(pays))
	}
	if pays[0].Status != entity.PaymentPaid {
		t.Errorf("status = %s, want paid", pays[0].Status)
	}
}
