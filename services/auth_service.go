package services

import (
	"errors"
	"strings"
	"time"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/repository"
	"github.com/fuzziecoder/Brocode-Spot-Update-App/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ login/register
// identifier เดียว (profile id ใน JWT) ตั้งแต่ login - ไม่มี fallback lookup
// ตาม phone/email และไม่มี auto-create ตอนหาไม่เจอ
type AuthService struct {
	profileRepo *repository.ProfileRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(repo *repository.ProfileRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{profileRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

// Register สร้าง profile ใหม่ ถ้า email/username ซ้ำจะ error
func (s *AuthService) Register(username, email, password, fullName, phone string) (*entity.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	count, err := s.profileRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}
	count, err = s.profileRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	p := &entity.Profile{
		Username:    username,
		Email:       email,
		Password:    string(hashed),
		FullName:    strings.TrimSpace(fullName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleUser,
	}
	if err := s.profileRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Login ตรวจสอบ credentials + ออก JWT
func (s *AuthService) Login(email, password string) (string, *entity.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	p, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(p.ID, p.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, p, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.Profile, error) {
	return s.profileRepo.FindByID(userID)
}

// UpdateProfile แก้ได้เฉพาะ identity fields
// role และ mission_count (derived) ห้ามแตะผ่านทางนี้
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.Profile, error) {
	allowed := map[string]bool{
		"username": true, "full_name": true, "phone_number": true, "avatar_url": true,
	}
	for k := range updates {
		if !allowed[k] {
			return nil, errors.New("field not updatable: " + k)
		}
	}
	if err := s.profileRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.profileRepo.FindByID(userID)
}
