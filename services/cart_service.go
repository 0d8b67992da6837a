package services

import (
	"errors"
	"log"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

// CartService ดูแลออเดอร์เครื่องดื่มต่อ (spot,user):
// line item + ยอดรวม consistent เสมอ
type CartService struct {
	DB        *gorm.DB
	SelRepo   *repository.SelectionRepository
	BrandRepo *repository.DrinkBrandRepository
	PayRepo   *repository.PaymentRepository
	Events    EventPublisher
}

func NewCartService(
	db *gorm.DB,
	selRepo *repository.SelectionRepository,
	brandRepo *repository.DrinkBrandRepository,
	payRepo *repository.PaymentRepository,
	events EventPublisher,
) *CartService {
	return &CartService{DB: db, SelRepo: selRepo, BrandRepo: brandRepo, PayRepo: payRepo, Events: orNop(events)}
}

type UpsertSelectionIn struct {
	SpotID       uint `json:"spotId" binding:"required"`
	DrinkBrandID uint `json:"drinkBrandId" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,min=1"`
}

// สรุปตะกร้า: คำนวณจาก line ปัจจุบันเสมอ ไม่เก็บ running total แยก
type CartSummary struct {
	ItemCount int   `json:"itemCount"`
	Amount    int64 `json:"amount"`
}

// RecomputeDrinkTotal = SUM(total_price) ของ line ที่เหลือ (ว่าง = 0)
// pure function: เรียกซ้ำโดยไม่มีอะไรเปลี่ยนได้ค่าเดิม
func RecomputeDrinkTotal(lines []entity.UserDrinkSelection) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalPrice
	}
	return total
}

func SummarizeCart(lines []entity.UserDrinkSelection) CartSummary {
	var sum CartSummary
	for _, l := range lines {
		sum.ItemCount += l.Quantity
		sum.Amount += l.TotalPrice
	}
	return sum
}

func (s *CartService) Brands(category string) ([]entity.DrinkBrand, error) {
	if category != "" && !entity.ValidBrandCategory(category) {
		return nil, errors.New("invalid category")
	}
	return s.BrandRepo.List(category)
}

func (s *CartService) UserSelections(spotID, userID uint) ([]entity.UserDrinkSelection, CartSummary, error) {
	lines, err := s.SelRepo.ListBySpotUser(spotID, userID)
	if err != nil {
		return nil, CartSummary{}, err
	}
	return lines, SummarizeCart(lines), nil
}

func (s *CartService) AllSelections(spotID uint) ([]entity.UserDrinkSelection, error) {
	return s.SelRepo.ListBySpot(spotID)
}

// Upsert เพิ่ม/แทน line ของ (spot,user,brand) - qty ต้อง > 0 เสมอตรงนี้
// การ dispatch "qty <= 0 ⇒ ลบ" เป็นหน้าที่ UpdateQuantity ไม่ใช่ของ upsert
func (s *CartService) Upsert(userID uint, in *UpsertSelectionIn) (*entity.UserDrinkSelection, error) {
	if in.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	brand, err := s.BrandRepo.GetByID(in.DrinkBrandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("drink brand not found")
		}
		return nil, err
	}
	if !brand.Available {
		return nil, errors.New("drink brand not available")
	}

	existed, err := s.SelRepo.Exists(in.SpotID, userID, in.DrinkBrandID)
	if err != nil {
		return nil, err
	}

	// snapshot ราคา brand ตอนเลือก
	line := &entity.UserDrinkSelection{
		SpotID:       in.SpotID,
		UserID:       userID,
		DrinkBrandID: in.DrinkBrandID,
		Quantity:     in.Quantity,
		UnitPrice:    brand.BasePrice,
		TotalPrice:   brand.BasePrice * int64(in.Quantity),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SelRepo.Upsert(tx, line)
	})
	if err != nil {
		return nil, err
	}

	s.refreshDrinkTotal(in.SpotID, userID)

	event := EventInsert
	if existed {
		event = EventUpdate
	}
	s.Events.Publish("user_drink_selections", event, in.SpotID, line)
	return line, nil
}

// qty <= 0 → ลบ line; ไม่งั้น upsert qty ใหม่ด้วย unit_price เดิมของ line
func (s *CartService) UpdateQuantity(userID, selectionID uint, qty int) error {
	line, err := s.SelRepo.GetByID(selectionID)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return errors.New("forbidden")
	}

	if qty <= 0 {
		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.SelRepo.Delete(tx, line.ID)
		}); err != nil {
			return err
		}
		s.refreshDrinkTotal(line.SpotID, line.UserID)
		s.Events.Publish("user_drink_selections", EventDelete, line.SpotID, line)
		return nil
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SelRepo.UpdateQuantity(tx, line.ID, qty)
	}); err != nil {
		return err
	}
	line.Quantity = qty
	line.TotalPrice = line.UnitPrice * int64(qty)
	s.refreshDrinkTotal(line.SpotID, line.UserID)
	s.Events.Publish("user_drink_selections", EventUpdate, line.SpotID, line)
	return nil
}

// ลบ line เดียวแบบไม่มีเงื่อนไข (แอดมินลบของใครก็ได้)
func (s *CartService) Remove(userID uint, selectionID uint, isAdmin bool) error {
	line, err := s.SelRepo.GetByID(selectionID)
	if err != nil {
		return err
	}
	if line.UserID != userID && !isAdmin {
		return errors.New("forbidden")
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.SelRepo.Delete(tx, line.ID)
	}); err != nil {
		return err
	}
	s.refreshDrinkTotal(line.SpotID, line.UserID)
	s.Events.Publish("user_drink_selections", EventDelete, line.SpotID, line)
	return nil
}

// คำนวณ drink_total_amount ของ payment (spot,user) ใหม่หลังทุกการแก้ line
// side effect: ล้มเหลวแค่ log ไม่ rollback write หลัก
func (s *CartService) refreshDrinkTotal(spotID, userID uint) {
	lines, err := s.SelRepo.ListBySpotUser(spotID, userID)
	if err != nil {
		log.Printf("drink total recompute failed (spot=%d user=%d): %v", spotID, userID, err)
		return
	}
	total := RecomputeDrinkTotal(lines)
	if err := s.PayRepo.SetDrinkTotal(s.DB, spotID, userID, total); err != nil {
		log.Printf("drink total write failed (spot=%d user=%d): %v", spotID, userID, err)
		return
	}
	if p, err := s.PayRepo.GetBySpotUser(spotID, userID); err == nil && p != nil {
		s.Events.Publish("payments", EventUpdate, spotID, p)
	}
}
