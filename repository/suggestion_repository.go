package repository

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/gorm"
)

// Drink/Food/Cigarette ที่ user เสนอเองต่อ spot
type SuggestionRepository struct{ DB *gorm.DB }

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

// ----- Drinks -----

func (r *SuggestionRepository) ListDrinks(spotID uint) ([]entity.Drink, error) {
	var drinks []entity.Drink
	err := r.DB.Where("spot_id = ?", spotID).Order("votes desc, id asc").Find(&drinks).Error
	if err := degradeSchemaMissing(err, "drinks"); err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *SuggestionRepository) GetDrink(id uint) (*entity.Drink, error) {
	var d entity.Drink
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SuggestionRepository) CreateDrink(d *entity.Drink) error {
	return r.DB.Create(d).Error
}

// เขียน votes + voted_by กลับทั้งก้อน (read-modify-write, last writer wins)
func (r *SuggestionRepository) SaveDrinkVotes(tx *gorm.DB, d *entity.Drink) error {
	return tx.Model(&entity.Drink{}).Where("id = ?", d.ID).
		Updates(map[string]any{"votes": d.Votes, "voted_by": d.VotedBy}).Error
}

func (r *SuggestionRepository) UpdateDrink(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Drink{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SuggestionRepository) DeleteDrink(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Drink{}, id).Error
}

// ----- Foods -----

func (r *SuggestionRepository) ListFoods(spotID uint) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Where("spot_id = ?", spotID).Order("id asc").Find(&foods).Error
	if err := degradeSchemaMissing(err, "foods"); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *SuggestionRepository) GetFood(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *SuggestionRepository) CreateFood(f *entity.Food) error {
	return r.DB.Create(f).Error
}

func (r *SuggestionRepository) UpdateFood(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Food{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SuggestionRepository) DeleteFood(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Food{}, id).Error
}

// ----- Cigarettes -----

func (r *SuggestionRepository) ListCigarettes(spotID uint) ([]entity.Cigarette, error) {
	var cigs []entity.Cigarette
	err := r.DB.Where("spot_id = ?", spotID).Order("id asc").Find(&cigs).Error
	if err := degradeSchemaMissing(err, "cigarettes"); err != nil {
		return nil, err
	}
	return cigs, nil
}

func (r *SuggestionRepository) GetCigarette(id uint) (*entity.Cigarette, error) {
	var cg entity.Cigarette
	if err := r.DB.First(&cg, id).Error; err != nil {
		return nil, err
	}
	return &cg, nil
}

func (r *SuggestionRepository) CreateCigarette(cg *entity.Cigarette) error {
	return r.DB.Create(cg).Error
}

func (r *SuggestionRepository) DeleteCigarette(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Cigarette{}, id).Error
}
