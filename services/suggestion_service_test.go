package services

import (
	"testing"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
)

func seedDrinkSuggestion(t *testing.T, ts *testServices, spotID, userID uint, name string) *entity.Drink {
	t.Helper()
	d, err := ts.sug.CreateDrink(userID, &CreateSuggestionIn{SpotID: spotID, Name: name})
	if err != nil {
		t.Fatalf("create drink %s: %v", name, err)
	}
	return d
}

// กดโหวตสองครั้ง = กลับสภาพเดิม (toggle เป็น self-inverse)
func TestVoteForDrinkToggle(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())
	d := seedDrinkSuggestion(t, ts, spot.ID, u.ID, "Old Monk")

	d, err := ts.sug.VoteForDrink(d.ID, u.ID)
	if err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if d.Votes != 1 || !d.VotedBy.Has(u.ID) {
		t.Fatalf("after vote: votes=%d votedBy=%v, want 1 with user present", d.Votes, d.VotedBy)
	}

	d, err = ts.sug.VoteForDrink(d.ID, u.ID)
	if err != nil {
		t.Fatalf("second vote: %v", err)
	}
	if d.Votes != 0 || d.VotedBy.Has(u.ID) {
		t.Fatalf("after unvote: votes=%d votedBy=%v, want 0 with user absent", d.Votes, d.VotedBy)
	}

	// ค่าใน DB ต้องตรงกับที่ service คืนมา
	got, err := ts.sug.ListDrinks(spot.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Votes != 0 {
		t.Fatalf("persisted votes = %+v, want single drink with 0 votes", got)
	}
}

func TestVoteForDrinkMultipleUsers(t *testing.T) {
	ts := newTestServices(t)
	a := seedProfile(t, ts.db, "bob", entity.RoleUser)
	b := seedProfile(t, ts.db, "joe", entity.RoleUser)
	spot := seedSpot(t, ts.db, a.ID, time.Now())
	d := seedDrinkSuggestion(t, ts, spot.ID, a.ID, "Old Monk")

	if _, err := ts.sug.VoteForDrink(d.ID, a.ID); err != nil {
		t.Fatalf("vote a: %v", err)
	}
	d, err := ts.sug.VoteForDrink(d.ID, b.ID)
	if err != nil {
		t.Fatalf("vote b: %v", err)
	}
	if d.Votes != 2 {
		t.Fatalf("votes = %d, want 2", d.Votes)
	}

	// a ถอนโหวต - ของ b ต้องไม่หาย
	d, err = ts.sug.VoteForDrink(d.ID, a.ID)
	if err != nil {
		t.Fatalf("unvote a: %v", err)
	}
	if d.Votes != 1 || !d.VotedBy.Has(b.ID) || d.VotedBy.Has(a.ID) {
		t.Fatalf("after unvote: votes=%d votedBy=%v, want only b", d.Votes, d.VotedBy)
	}
}

func TestSetDrinkPrice(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())
	d := seedDrinkSuggestion(t, ts, spot.ID, u.ID, "Old Monk")

	if err := ts.sug.SetDrinkPrice(d.ID, -5); err == nil {
		t.Fatal("expected error for negative price")
	}
	if err := ts.sug.SetDrinkPrice(d.ID, 250); err != nil {
		t.Fatalf("set price: %v", err)
	}

	got, err := ts.sug.ListDrinks(spot.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Price == nil || *got[0].Price != 250 {
		t.Fatalf("persisted price = %+v, want 250", got)
	}
}

func TestDeleteDrinkOwnerOnly(t *testing.T) {
	ts := newTestServices(t)
	owner := seedProfile(t, ts.db, "bob", entity.RoleUser)
	other := seedProfile(t, ts.db, "joe", entity.RoleUser)
	spot := seedSpot(t, ts.db, owner.ID, time.Now())
	d := seedDrinkSuggestion(t, ts, spot.ID, owner.ID, "Old Monk")

	if err := ts.sug.DeleteDrink(d.ID, other.ID, false); err == nil {
		t.Fatal("expected forbidden for non-owner")
	}
	if err := ts.sug.DeleteDrink(d.ID, other.ID, true); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	got, err := ts.sug.ListDrinks(spot.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d drinks after delete, want 0", len(got))
	}
}

func TestFoodAndCigaretteSuggestions(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now())

	f, err := ts.sug.CreateFood(u.ID, &CreateSuggestionIn{SpotID: spot.ID, Name: "Chakna"})
	if err != nil {
		t.Fatalf("create food: %v", err)
	}
	if err := ts.sug.SetFoodPrice(f.ID, 120); err != nil {
		t.Fatalf("food price: %v", err)
	}

	if _, err := ts.sug.CreateCigarette(u.ID, &CreateSuggestionIn{SpotID: spot.ID, Name: "Marlboro"}); err != nil {
		t.Fatalf("create cigarette: %v", err)
	}

	foods, err := ts.sug.ListFoods(spot.ID)
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) != 1 || foods[0].Price == nil || *foods[0].Price != 120 {
		t.Fatalf("foods = %+v, want one priced 120", foods)
	}

	cigs, err := ts.sug.ListCigarettes(spot.ID)
	if err != nil {
		t.Fatalf("list cigarettes: %v", err)
	}
	if len(cigs) != 1 {
		t.Fatalf("got %d cigarettes, want 1", len(cigs))
	}
}
