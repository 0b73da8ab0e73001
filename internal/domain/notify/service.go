package notify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kalam-platform/internal/domain/errs"
	"kalam-platform/internal/domain/identity"

	"gorm.io/gorm"
)

// Service fans notifications out to role groups or specific users and
// tracks per-user read state.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, title, message, targetType string, targetUserIDs []uint) (*Notification, error) {
	switch targetType {
	case TargetAll, TargetWriters, TargetVocalists:
	case TargetSpecific:
		if len(targetUserIDs) == 0 {
			return nil, &errs.ValidationError{Field: "target_user_ids", Reason: "required for specific notifications"}
		}
	default:
		return nil, &errs.ValidationError{Field: "target_type", Reason: "invalid target_type"}
	}

	ids := make([]string, 0, len(targetUserIDs))
	for _, id := range targetUserIDs {
		ids = append(ids, strconv.FormatUint(uint64(id), 10))
	}

	n := &Notification{
		Title:         title,
		Message:       message,
		TargetType:    targetType,
		SpecificUsers: strings.Join(ids, ","),
	}
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

// UserView is a notification joined with the requesting user's read flag.
type UserView struct {
	Notification
	Read bool `json:"read"`
}

// ListForUser returns the notifications targeted at the user, newest
// first, with read flags.
func (s *Service) ListForUser(ctx context.Context, userID uint, role identity.Role) ([]UserView, error) {
	db := s.db.WithContext(ctx)

	targets := []string{TargetAll}
	switch {
	case role.IsWriter():
		targets = append(targets, TargetWriters)
	case role.IsVocalist():
		targets = append(targets, TargetVocalists)
	}

	var all []Notification
	err := db.
		Where("target_type IN ?", targets).
		Or("target_type = ? AND (specific_users = ? OR specific_users LIKE ? OR specific_users LIKE ? OR specific_users LIKE ?)",
			TargetSpecific,
			fmt.Sprint(userID),
			fmt.Sprintf("%d,%%", userID),
			fmt.Sprintf("%%,%d", userID),
			fmt.Sprintf("%%,%d,%%", userID)).
		Order("created_at DESC").
		Find(&all).Error
	if err != nil {
		return nil, err
	}

	var reads []NotificationRead
	if err := db.Where("user_id = ?", userID).Find(&reads).Error; err != nil {
		return nil, err
	}
	seen := make(map[uint]bool, len(reads))
	for _, r := range reads {
		seen[r.NotificationID] = true
	}

	out := make([]UserView, 0, len(all))
	for _, n := range all {
		out = append(out, UserView{Notification: n, Read: seen[n.ID]})
	}
	return out, nil
}

// MarkRead records the read receipt once; marking twice is reported as
// not found, matching the intake contract.
func (s *Service) MarkRead(ctx context.Context, notificationID, userID uint) error {
	db := s.db.WithContext(ctx)

	var n Notification
	if err := db.First(&n, notificationID).Error; err != nil {
		return &errs.NotFoundError{Entity: "notification", ID: notificationID}
	}

	var count int64
	if err := db.Model(&NotificationRead{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &errs.NotFoundError{Entity: "unread notification", ID: notificationID}
	}

	return db.Create(&NotificationRead{NotificationID: notificationID, UserID: userID}).Error
}
