package scheduling

import (
	"context"

	"gorm.io/gorm"
)

// Service owns studio-visit and remote-recording request intake and the
// open-request predicate the assignment resolver consumes.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) CreateStudioVisit(ctx context.Context, req *StudioVisitRequest) error {
	return s.db.WithContext(ctx).Create(req).Error
}

func (s *Service) CreateRemoteRecording(ctx context.Context, req *RemoteRecordingRequest) error {
	return s.db.WithContext(ctx).Create(req).Error
}

func (s *Service) ListStudioVisits(ctx context.Context) ([]StudioVisitRequest, error) {
	var out []StudioVisitRequest
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *Service) ListStudioVisitsByVocalist(ctx context.Context, vocalistID uint) ([]StudioVisitRequest, error) {
	var out []StudioVisitRequest
	err := s.db.WithContext(ctx).
		Where("vocalist_id = ?", vocalistID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (s *Service) ListRemoteRecordings(ctx context.Context) ([]RemoteRecordingRequest, error) {
	var out []RemoteRecordingRequest
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *Service) ListRemoteRecordingsByVocalist(ctx context.Context, vocalistID uint) ([]RemoteRecordingRequest, error) {
	var out []RemoteRecordingRequest
	err := s.db.WithContext(ctx).
		Where("vocalist_id = ?", vocalistID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// HasOpenRequest reports whether the vocalist has any booking request of
// either kind against the work.
func (s *Service) HasOpenRequest(ctx context.Context, vocalistID, workID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&StudioVisitRequest{}).
		Where("vocalist_id = ? AND work_id = ?", vocalistID, workID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = s.db.WithContext(ctx).
		Model(&RemoteRecordingRequest{}).
		Where("vocalist_id = ? AND work_id = ?", vocalistID, workID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
