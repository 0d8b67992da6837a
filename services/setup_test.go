package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB ใหม่ใน memory ต่อหนึ่ง test (ตั้งชื่อตาม test กัน state รั่วข้าม test)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Profile{},
		&entity.Spot{},
		&entity.Invitation{}, &entity.Payment{}, &entity.Attendance{},
		&entity.DrinkBrand{}, &entity.UserDrinkSelection{},
		&entity.Drink{}, &entity.Food{}, &entity.Cigarette{},
		&entity.Notification{}, &entity.ChatMessage{}, &entity.Moment{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username, role string) *entity.Profile {
	t.Helper()
	p := &entity.Profile{
		Username: username,
		Email:    username + "@test.local",
		Password: "x",
		Role:     role,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return p
}

func seedSpot(t *testing.T, db *gorm.DB, creatorID uint, date time.Time) *entity.Spot {
	t.Helper()
	s := &entity.Spot{
		Date:      date,
		Location:  "rooftop",
		Budget:    500,
		CreatedBy: creatorID,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed spot: %v", err)
	}
	return s
}

func seedBrand(t *testing.T, db *gorm.DB, name string, price int64) *entity.DrinkBrand {
	t.Helper()
	b := &entity.DrinkBrand{Name: name, Category: entity.BrandCategoryBeer, BasePrice: price, Available: true}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed brand %s: %v", name, err)
	}
	return b
}

// services ที่ประกอบพร้อม repo ครบ ใช้ซ้ำในหลาย test
type testServices struct {
	db   *gorm.DB
	cart *CartService
	rsvp *RSVPService
	pay  *PaymentService
	att  *AttendanceService
	spot *SpotService
	sug  *SuggestionService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupTestDB(t)

	profileRepo := repository.NewProfileRepository(db)
	spotRepo := repository.NewSpotRepository(db)
	invRepo := repository.NewInvitationRepository(db)
	payRepo := repository.NewPaymentRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	brandRepo := repository.NewDrinkBrandRepository(db)
	selRepo := repository.NewSelectionRepository(db)
	sugRepo := repository.NewSuggestionRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	return &testServices{
		db:   db,
		cart: NewCartService(db, selRepo, brandRepo, payRepo, nil),
		rsvp: NewRSVPService(db, invRepo, payRepo, selRepo, nil),
		pay:  NewPaymentService(db, payRepo, nil),
		att:  NewAttendanceService(db, attRepo, profileRepo, spotRepo, nil),
		spot: NewSpotService(db, spotRepo, invRepo, payRepo, profileRepo, notifRepo, nil),
		sug:  NewSuggestionService(db, sugRepo, nil),
	}
}

func paymentFor(t *testing.T, db *gorm.DB, spotID, userID uint) *entity.Payment {
	t.Helper()
	var p entity.Payment
	err := db.Where("spot_id = ? AND user_id = ?", spotID, userID).First(&p).Error
	if err != nil {
		t.Fatalf("payment row (spot=%d user=%d): %v", spotID, userID, err)
	}
	return &p
}
