package services

import (
	"testing"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
)

func missionCount(t *testing.T, ts *testServices, userID uint) int {
	t.Helper()
	var p entity.Profile
	if err := ts.db.First(&p, userID).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return p.MissionCount
}

// ติ๊กมาแล้วซ้ำๆ mission_count ต้องขึ้นแค่ครั้งเดียว
func TestAttendanceRepeatTrueCountsOnce(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(-24*time.Hour))

	for i := 0; i < 3; i++ {
		if _, err := ts.att.Upsert(spot.ID, u.ID, true); err != nil {
			t.Fatalf("upsert #%d: %v", i+1, err)
		}
	}

	if got := missionCount(t, ts, u.ID); got != 1 {
		t.Errorf("mission_count = %d, want 1", got)
	}

	var count int64
	ts.db.Model(&entity.Attendance{}).Where("spot_id = ? AND user_id = ?", spot.ID, u.ID).Count(&count)
	if count != 1 {
		t.Errorf("got %d attendance rows, want 1", count)
	}
}

func TestAttendanceFalseThenTrue(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(-24*time.Hour))

	if _, err := ts.att.Upsert(spot.ID, u.ID, false); err != nil {
		t.Fatalf("upsert false: %v", err)
	}
	if got := missionCount(t, ts, u.ID); got != 0 {
		t.Fatalf("mission_count after false = %d, want 0", got)
	}

	if _, err := ts.att.Upsert(spot.ID, u.ID, true); err != nil {
		t.Fatalf("upsert true: %v", err)
	}
	if got := missionCount(t, ts, u.ID); got != 1 {
		t.Errorf("mission_count after first true = %d, want 1", got)
	}
}

// true → false → true: การกลับเข้า true รอบใหม่นับอีกครั้ง (ข้ามขอบ false→true)
func TestAttendanceToggleBackCountsAgain(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(-24*time.Hour))

	for _, attended := range []bool{true, false, true} {
		if _, err := ts.att.Upsert(spot.ID, u.ID, attended); err != nil {
			t.Fatalf("upsert %v: %v", attended, err)
		}
	}

	if got := missionCount(t, ts, u.ID); got != 2 {
		t.Errorf("mission_count = %d, want 2", got)
	}
}

func TestAttendanceRejectsFutureSpot(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(48*time.Hour))

	if _, err := ts.att.Upsert(spot.ID, u.ID, true); err == nil {
		t.Fatal("expected error for spot in the future")
	}
	if got := missionCount(t, ts, u.ID); got != 0 {
		t.Errorf("mission_count = %d, want 0 after rejected upsert", got)
	}
}

func TestAttendanceGetUnrecorded(t *testing.T) {
	ts := newTestServices(t)
	u := seedProfile(t, ts.db, "bob", entity.RoleUser)
	spot := seedSpot(t, ts.db, u.ID, time.Now().Add(-24*time.Hour))

	a, err := ts.att.Get(spot.ID, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a != nil {
		t.Fatalf("got %+v, want nil for unrecorded attendance", a)
	}
}
