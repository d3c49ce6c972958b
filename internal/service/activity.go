package service

import (
	"context"
	"fmt"
	"time"

	"nestlog/internal/model"
	"nestlog/internal/realtime"
	"nestlog/internal/stats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityService owns activity rows. Mutations publish change events so
// other devices in the family see them without polling.
type ActivityService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewActivityService(db *gorm.DB, hub *realtime.Hub) *ActivityService {
	return &ActivityService{db: db, hub: hub}
}

func (s *ActivityService) Create(ctx context.Context, act *model.Activity) error {
	if act.ID == "" {
		act.ID = uuid.NewString()
	}
	if act.RecordedAt.IsZero() {
		act.RecordedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(act).Error; err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	s.publish(act.FamilyID, realtime.ChangeEvent{Action: realtime.ActionInsert, Activity: act})
	return nil
}

func (s *ActivityService) Update(ctx context.Context, familyID int, act *model.Activity) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", act.ID, familyID).
		Select("type", "recorded_at", "memo", "metadata", "updated_at").
		Updates(act)
	if res.Error != nil {
		return fmt.Errorf("update activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.publish(familyID, realtime.ChangeEvent{Action: realtime.ActionUpdate, Activity: act})
	return nil
}

func (s *ActivityService) Delete(ctx context.Context, familyID int, id string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", id, familyID).
		Delete(&model.Activity{})
	if res.Error != nil {
		return fmt.Errorf("delete activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.publish(familyID, realtime.ChangeEvent{Action: realtime.ActionDelete, ID: id})
	return nil
}

func (s *ActivityService) GetByID(ctx context.Context, familyID int, id string) (*model.Activity, error) {
	var act model.Activity
	err := s.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", id, familyID).
		First(&act).Error
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	return &act, nil
}

// ListRange returns the family's activities whose RecordedAt falls inside
// the closed range. Order is unspecified; the aggregation core does not
// need sorted input.
func (s *ActivityService) ListRange(ctx context.Context, familyID int, r stats.DateRange) ([]model.Activity, error) {
	var acts []model.Activity
	err := s.db.WithContext(ctx).
		Where("family_id = ? AND recorded_at >= ? AND recorded_at <= ?", familyID, r.Start, r.End).
		Find(&acts).Error
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	return acts, nil
}

func (s *ActivityService) publish(familyID int, ev realtime.ChangeEvent) {
	if s.hub != nil {
		s.hub.Publish(familyID, ev)
	}
}
