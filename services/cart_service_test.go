package services

import (
	"testing"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
)

func TestRecomputeDrinkTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []entity.UserDrinkSelection
		want  int64
	}{
		{"empty set is zero", nil, 0},
		{"single line", []entity.UserDrinkSelection{{TotalPrice: 200}}, 200},
		{"sums all lines", []entity.UserDrinkSelection{{TotalPrice: 200}, {TotalPrice: 40}, {TotalPrice: 700}}, 940},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecomputeDrinkTotal(tt.lines)
			if got != tt.want {
				t.Errorf("RecomputeDrinkTotal = %d, want %d", got, tt.want)
			}
			// idempotent: คิดซ้ำได้ค่าเดิม
			if again := RecomputeDrinkTotal(tt.lines); again != got {
				t.Errorf("recompute not stable: %d then %d", got, again)
			}
		})
	}
}

func TestSummarizeCart(t *testing.T) {
	lines := []entity.UserDrinkSelection{
		{Quantity: 2, TotalPrice: 360},
		{Quantity: 1, TotalPrice: 700},
	}
	sum := SummarizeCart(lines)
	if sum.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", sum.ItemCount)
	}
	if sum.Amount != 1060 {
		t.Errorf("Amount = %d, want 1060", sum.Amount)
	}
}

func TestUpsertSelectionIdempotent(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(24*time.Hour))
	brand := seedBrand(t, ts.db, "Kingfisher", 100)

	in := &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 2}
	if _, err := ts.cart.Upsert(u.ID, in); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := ts.cart.Upsert(u.ID, in); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	lines, sum, err := ts.cart.UserSelections(spot.ID, u.ID)
	if err != nil {
		t.Fatalf("read selections: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want exactly 1", len(lines))
	}
	if lines[0].TotalPrice != lines[0].UnitPrice*int64(lines[0].Quantity) {
		t.Errorf("total %d != qty*unit %d", lines[0].TotalPrice, lines[0].UnitPrice*int64(lines[0].Quantity))
	}
	if sum.Amount != 200 || sum.ItemCount != 2 {
		t.Errorf("summary = %+v, want amount 200 count 2", sum)
	}
}

func TestUpsertSelectionRejectsNonPositiveQuantity(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())
	brand := seedBrand(t, ts.db, "Tuborg", 150)

	for _, qty := range []int{0, -3} {
		if _, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: qty}); err == nil {
			t.Errorf("qty=%d: expected error, got nil", qty)
		}
	}
}

func TestUpdateQuantityZeroDeletesLine(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())
	brand := seedBrand(t, ts.db, "Soda", 20)

	line, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := ts.cart.UpdateQuantity(u.ID, line.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}

	lines, _, err := ts.cart.UserSelections(spot.ID, u.ID)
	if err != nil {
		t.Fatalf("read selections: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("line still present after qty=0, got %d lines", len(lines))
	}

	// เลือก brand เดิมใหม่ได้ (unique triple ถูกคืนจริง)
	if _, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 1}); err != nil {
		t.Fatalf("re-add after delete: %v", err)
	}
}

func TestUpdateQuantityKeepsUnitPriceSnapshot(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())
	brand := seedBrand(t, ts.db, "Budweiser", 200)

	line, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// ราคา brand เปลี่ยนทีหลัง - line เดิมต้องใช้ snapshot เดิม
	ts.db.Model(&entity.DrinkBrand{}).Where("id = ?", brand.ID).Update("base_price", 999)

	if err := ts.cart.UpdateQuantity(u.ID, line.ID, 4); err != nil {
		t.Fatalf("update qty: %v", err)
	}

	lines, _, _ := ts.cart.UserSelections(spot.ID, u.ID)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].UnitPrice != 200 {
		t.Errorf("unit price = %d, want snapshot 200", lines[0].UnitPrice)
	}
	if lines[0].TotalPrice != 800 {
		t.Errorf("total = %d, want 800", lines[0].TotalPrice)
	}
}

// scenario ตาม flow จริง: confirm → payment 0 → เลือก 2x100 → payment 200
func TestDrinkTotalFollowsSelections(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(24*time.Hour))
	brandX := seedBrand(t, ts.db, "BrandX", 100)
	brandY := seedBrand(t, ts.db, "BrandY", 50)

	if _, err := ts.rsvp.Upsert(spot.ID, u.ID, entity.InvitationConfirmed); err != nil {
		t.Fatalf("confirm rsvp: %v", err)
	}
	p := paymentFor(t, ts.db, spot.ID, u.ID)
	if p.Status != entity.PaymentNotPaid || p.DrinkTotalAmount != 0 {
		t.Fatalf("bootstrap payment = {%s %d}, want {not_paid 0}", p.Status, p.DrinkTotalAmount)
	}

	lineX, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brandX.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("upsert X: %v", err)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 200 {
		t.Fatalf("after 2x100: total = %d, want 200", got)
	}

	if _, err := ts.cart.Upsert(u.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brandY.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert Y: %v", err)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 250 {
		t.Fatalf("after +1x50: total = %d, want 250", got)
	}

	if err := ts.cart.UpdateQuantity(u.ID, lineX.ID, 3); err != nil {
		t.Fatalf("update X qty: %v", err)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 350 {
		t.Fatalf("after 3x100+1x50: total = %d, want 350", got)
	}

	if err := ts.cart.UpdateQuantity(u.ID, lineX.ID, 0); err != nil {
		t.Fatalf("delete X: %v", err)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 50 {
		t.Fatalf("after delete X: total = %d, want 50", got)
	}

	lines, _, _ := ts.cart.UserSelections(spot.ID, u.ID)
	if err := ts.cart.Remove(u.ID, lines[0].ID, false); err != nil {
		t.Fatalf("remove last line: %v", err)
	}
	if got := paymentFor(t, ts.db, spot.ID, u.ID).DrinkTotalAmount; got != 0 {
		t.Fatalf("empty cart: total = %d, want 0", got)
	}
}

func TestUpdateQuantityForbiddenForOtherUser(t *testing.T) {
	ts := newTestServices(t)
	owner := seedProfile(t, ts.db, "owner", entity.RoleUser)
	other := seedProfile(t, ts.db, "other", entity.RoleUser)
	spot := seedSpot(t, ts.db, owner.ID, time.Now())
	brand := seedBrand(t, ts.db, "Sprite", 40)

	line, err := ts.cart.Upsert(owner.ID, &UpsertSelectionIn{SpotID: spot.ID, DrinkBrandID: brand.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := ts.cart.UpdateQuantity(other.ID, line.ID, 5); err == nil {
		t.Fatal("expected forbidden error for other user")
	}
}

// ตารางยังไม่ migrate → read path คืน empty ไม่ใช่ error
func TestReadsDegradeWhenSchemaMissing(t *testing.T) {
	ts := newTestServices(t)
	ts.db.Migrator().DropTable(&entity.UserDrinkSelection{})

	selRepo := repository.NewSelectionRepository(ts.db)
	lines, err := selRepo.ListBySpotUser(1, 1)
	if err != nil {
		t.Fatalf("expected degraded empty result, got error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("got %d lines from missing table", len(lines))
	}
}
