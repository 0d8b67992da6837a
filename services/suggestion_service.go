package services

import (
	"errors"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"gorm.io/gorm"
)

// SuggestionService ดูแล drink/food/cigarette ที่ user เสนอเองต่อ spot
type SuggestionService struct {
	DB     *gorm.DB
	Repo   *repository.SuggestionRepository
	Events EventPublisher
}

func NewSuggestionService(db *gorm.DB, repo *repository.SuggestionRepository, events EventPublisher) *SuggestionService {
	return &SuggestionService{DB: db, Repo: repo, Events: orNop(events)}
}

type CreateSuggestionIn struct {
	SpotID   uint   `json:"spotId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// ----- Drinks -----

func (s *SuggestionService) ListDrinks(spotID uint) ([]entity.Drink, error) {
	return s.Repo.ListDrinks(spotID)
}

func (s *SuggestionService) CreateDrink(userID uint, in *CreateSuggestionIn) (*entity.Drink, error) {
	d := &entity.Drink{
		SpotID:    in.SpotID,
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		CreatedBy: userID,
		VotedBy:   entity.UserIDSet{},
	}
	if err := s.Repo.CreateDrink(d); err != nil {
		return nil, err
	}
	s.Events.Publish("drinks", EventInsert, d.SpotID, d)
	return d, nil
}

// VoteForDrink สลับโหวตของ user: กดซ้ำ = ยกเลิก (self-inverse)
// votes = ขนาดของ voted_by เสมอ เลยไม่มีทางติดลบ
func (s *SuggestionService) VoteForDrink(drinkID, userID uint) (*entity.Drink, error) {
	d, err := s.Repo.GetDrink(drinkID)
	if err != nil {
		return nil, err
	}

	d.VotedBy, _ = d.VotedBy.Toggle(userID)
	d.Votes = len(d.VotedBy)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SaveDrinkVotes(tx, d)
	})
	if err != nil {
		return nil, err
	}

	s.Events.Publish("drinks", EventUpdate, d.SpotID, d)
	return d, nil
}

// ตั้งราคา suggestion - admin เท่านั้น (บังคับที่ route)
func (s *SuggestionService) SetDrinkPrice(id uint, price int64) error {
	if price < 0 {
		return errors.New("price must not be negative")
	}
	return s.Repo.UpdateDrink(id, map[string]any{"price": price})
}

func (s *SuggestionService) DeleteDrink(id, userID uint, isAdmin bool) error {
	d, err := s.Repo.GetDrink(id)
	if err != nil {
		return err
	}
	if d.CreatedBy != userID && !isAdmin {
		return errors.New("forbidden")
	}
	if err := s.Repo.DeleteDrink(id); err != nil {
		return err
	}
	s.Events.Publish("drinks", EventDelete, d.SpotID, d)
	return nil
}

// ----- Foods -----

func (s *SuggestionService) ListFoods(spotID uint) ([]entity.Food, error) {
	return s.Repo.ListFoods(spotID)
}

func (s *SuggestionService) CreateFood(userID uint, in *CreateSuggestionIn) (*entity.Food, error) {
	f := &entity.Food{
		SpotID:    in.SpotID,
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		CreatedBy: userID,
	}
	if err := s.Repo.CreateFood(f); err != nil {
		return nil, err
	}
	s.Events.Publish("foods", EventInsert, f.SpotID, f)
	return f, nil
}

func (s *SuggestionService) SetFoodPrice(id uint, price int64) error {
	if price < 0 {
		return errors.New("price must not be negative")
	}
	return s.Repo.UpdateFood(id, map[string]any{"price": price})
}

func (s *SuggestionService) DeleteFood(id, userID uint, isAdmin bool) error {
	f, err := s.Repo.GetFood(id)
	if err != nil {
		return err
	}
	if f.CreatedBy != userID && !isAdmin {
		return errors.New("forbidden")
	}
	if err := s.Repo.DeleteFood(id); err != nil {
		return err
	}
	s.Events.Publish("foods", EventDelete, f.SpotID, f)
	return nil
}

// ----- Cigarettes -----

func (s *SuggestionService) ListCigarettes(spotID uint) ([]entity.Cigarette, error) {
	return s.Repo.ListCigarettes(spotID)
}

func (s *SuggestionService) CreateCigarette(userID uint, in *CreateSuggestionIn) (*entity.Cigarette, error) {
	cg := &entity.Cigarette{
		SpotID:    in.SpotID,
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		CreatedBy: userID,
	}
	if err := s.Repo.CreateCigarette(cg); err != nil {
		return nil, err
	}
	s.Events.Publish("cigarettes", EventInsert, cg.SpotID, cg)
	return cg, nil
}

func (s *SuggestionService) DeleteCigarette(id, userID uint, isAdmin bool) error {
	cg, err := s.Repo.GetCigarette(id)
	if err != nil {
		return err
	}
	if cg.CreatedBy != userID && !isAdmin {
		return errors.New("forbidden")
	}
	if err := s.Repo.DeleteCigarette(id); err != nil {
		return err
	}
	s.Events.Publish("cigarettes", EventDelete, cg.SpotID, cg)
	return nil
}
