package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"nestlog/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FamilyService manages households: the shared family code devices join
// with, the device roster, the baby profile and supplement presets.
type FamilyService struct{ db *gorm.DB }

func NewFamilyService(db *gorm.DB) *FamilyService { return &FamilyService{db: db} }

// codeAlphabet avoids 0/O and 1/I so codes survive being read aloud.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func newFamilyCode() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// Create registers a new family and its first device. The join secret is
// stored bcrypt-hashed, never in the clear.
func (s *FamilyService) Create(ctx context.Context, name, secret, deviceName string) (*model.Family, *model.Device, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash secret: %w", err)
	}
	fam := model.Family{Code: newFamilyCode(), SecretHash: string(hash), Name: name}
	if err := s.db.WithContext(ctx).Create(&fam).Error; err != nil {
		return nil, nil, fmt.Errorf("insert family: %w", err)
	}
	dev, err := s.addDevice(ctx, fam.ID, deviceName)
	if err != nil {
		return nil, nil, err
	}
	return &fam, dev, nil
}

// Join verifies the code+secret pair and registers the calling device.
func (s *FamilyService) Join(ctx context.Context, code, secret, deviceName string) (*model.Family, *model.Device, error) {
	var fam model.Family
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&fam).Error; err != nil {
		return nil, nil, fmt.Errorf("family not found: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(fam.SecretHash), []byte(secret)) != nil {
		return nil, nil, fmt.Errorf("wrong secret")
	}
	dev, err := s.addDevice(ctx, fam.ID, deviceName)
	if err != nil {
		return nil, nil, err
	}
	return &fam, dev, nil
}

func (s *FamilyService) addDevice(ctx context.Context, familyID int, name string) (*model.Device, error) {
	if name == "" {
		name = "unnamed device"
	}
	dev := model.Device{ID: uuid.NewString(), FamilyID: familyID, Name: name}
	if err := s.db.WithContext(ctx).Create(&dev).Error; err != nil {
		return nil, fmt.Errorf("insert device: %w", err)
	}
	return &dev, nil
}

func (s *FamilyService) Devices(ctx context.Context, familyID int) ([]model.Device, error) {
	var devs []model.Device
	err := s.db.WithContext(ctx).Where("family_id = ?", familyID).Order("created_at").Find(&devs).Error
	if err != nil {
		return nil, fmt.Errorf("query devices: %w", err)
	}
	return devs, nil
}

// UpsertBaby creates or updates the family's single baby profile.
func (s *FamilyService) UpsertBaby(ctx context.Context, familyID int, name, birthday string) (*model.Baby, error) {
	var baby model.Baby
	err := s.db.WithContext(ctx).Where("family_id = ?", familyID).First(&baby).Error
	if err == gorm.ErrRecordNotFound {
		baby = model.Baby{FamilyID: familyID, Name: name, Birthday: birthday}
		if err := s.db.WithContext(ctx).Create(&baby).Error; err != nil {
			return nil, fmt.Errorf("insert baby: %w", err)
		}
		return &baby, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query baby: %w", err)
	}
	baby.Name = name
	baby.Birthday = birthday
	if err := s.db.WithContext(ctx).Save(&baby).Error; err != nil {
		return nil, fmt.Errorf("update baby: %w", err)
	}
	return &baby, nil
}

func (s *FamilyService) Baby(ctx context.Context, familyID int) (*model.Baby, error) {
	var baby model.Baby
	if err := s.db.WithContext(ctx).Where("family_id = ?", familyID).First(&baby).Error; err != nil {
		return nil, fmt.Errorf("query baby: %w", err)
	}
	return &baby, nil
}

func (s *FamilyService) Presets(ctx context.Context, familyID int) ([]model.SupplementPreset, error) {
	var presets []model.SupplementPreset
	err := s.db.WithContext(ctx).Where("family_id = ?", familyID).Order("id").Find(&presets).Error
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	return presets, nil
}

func (s *FamilyService) AddPreset(ctx context.Context, familyID int, name string) (*model.SupplementPreset, error) {
	p := model.SupplementPreset{FamilyID: familyID, Name: name}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("insert preset: %w", err)
	}
	return &p, nil
}

func (s *FamilyService) DeletePreset(ctx context.Context, familyID, id int) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", id, familyID).
		Delete(&model.SupplementPreset{})
	if res.Error != nil {
		return fmt.Errorf("delete preset: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
