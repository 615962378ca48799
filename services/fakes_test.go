package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

// fakeEnrollmentRepo is an in-memory EnrollmentRepository. transitionErr lets
// sweep tests inject a per-row failure.
type fakeEnrollmentRepo struct {
	items         map[uint]*models.Enrollment
	nextID        uint
	transitionErr map[uint]error
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		items:         map[uint]*models.Enrollment{},
		transitionErr: map[uint]error{},
	}
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, e *models.Enrollment) error {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeEnrollmentRepo) FindByID(_ context.Context, id uint) (*models.Enrollment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFound("enrollment", id)
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEnrollmentRepo) ListByUser(_ context.Context, userID uint) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.items {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) FindLive(_ context.Context, userID uint, kind models.EnrollmentKind) (*models.Enrollment, error) {
	for _, e := range f.items {
		if e.UserID == userID && e.Kind == kind && !e.Status.Terminal() {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentRepo) ListOverlapping(_ context.Context, userID uint, kind models.EnrollmentKind, start, end time.Time) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.items {
		if e.UserID != userID || e.Kind != kind || e.Status.Terminal() {
			continue
		}
		if !e.StartDate.After(end) && !e.EndDate.Before(start) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) ListActive(_ context.Context) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for _, e := range f.items {
		if e.Status == models.StatusActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) Transition(_ context.Context, id uint, fn func(*models.Enrollment) error) (*models.Enrollment, error) {
	if err := f.transitionErr[id]; err != nil {
		return nil, err
	}
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFound("enrollment", id)
	}
	cp := *e
	if err := fn(&cp); err != nil {
		return nil, err
	}
	f.items[id] = &cp
	out := cp
	return &out, nil
}

// fakeTargetReader resolves targets from a static map keyed by kind and id.
type fakeTargetReader struct {
	targets map[string]*repository.TargetInfo
}

func newFakeTargetReader() *fakeTargetReader {
	return &fakeTargetReader{targets: map[string]*repository.TargetInfo{}}
}

func (f *fakeTargetReader) add(kind models.EnrollmentKind, id uint, totalUnits int, enabled bool) {
	f.targets[fmt.Sprintf("%s/%d", kind, id)] = &repository.TargetInfo{TotalUnits: totalUnits, Enabled: enabled}
}

func (f *fakeTargetReader) GetTarget(_ context.Context, kind models.EnrollmentKind, targetID uint) (*repository.TargetInfo, error) {
	info, ok := f.targets[fmt.Sprintf("%s/%d", kind, targetID)]
	if !ok {
		return nil, apperrors.TargetNotFound(string(kind), targetID)
	}
	return info, nil
}
