// Package classes holds the class and attendance records the RBAC-gated
// routes operate on. It is deliberately thin: the interesting behavior lives
// in the authentication and authorization layers that gate it.
package classes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashishshah/live-attendance/internal/apperrors"
)

// Class is a class owned by a teacher.
type Class struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	TeacherID uuid.UUID `gorm:"type:uuid;index;not null" json:"teacherId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate generates a UUID if not already set.
func (c *Class) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AttendanceRecord marks a student present in a class at a point in time.
type AttendanceRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClassID    uuid.UUID `gorm:"type:uuid;index;not null" json:"classId"`
	StudentID  uuid.UUID `gorm:"type:uuid;index;not null" json:"studentId"`
	RecordedAt time.Time `gorm:"autoCreateTime" json:"recordedAt"`
}

// BeforeCreate generates a UUID if not already set.
func (a *AttendanceRecord) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Service persists classes and attendance records.
type Service struct {
	db *gorm.DB
}

// NewService creates the classes service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateClass creates a class owned by the given teacher.
func (s *Service) CreateClass(ctx context.Context, name, teacherID string) (*Class, error) {
	tid, err := uuid.Parse(teacherID)
	if err != nil {
		return nil, apperrors.Validation("teacher id must be a valid id")
	}
	c := &Class{Name: name, TeacherID: tid}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, apperrors.Dependency("class store", err)
	}
	return c, nil
}

// RecordAttendance marks a student present in a class.
func (s *Service) RecordAttendance(ctx context.Context, classID, studentID string) (*AttendanceRecord, error) {
	cid, err := uuid.Parse(classID)
	if err != nil {
		return nil, apperrors.Validation("class id must be a valid id")
	}
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return nil, apperrors.Validation("student id must be a valid id")
	}

	var class Class
	if err := s.db.WithContext(ctx).First(&class, "id = ?", cid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("class")
		}
		return nil, apperrors.Dependency("class store", err)
	}

	rec := &AttendanceRecord{ClassID: cid, StudentID: sid}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, apperrors.Dependency("class store", err)
	}
	return rec, nil
}

// ListAttendance returns a student's own attendance records.
func (s *Service) ListAttendance(ctx context.Context, studentID string) ([]AttendanceRecord, error) {
	sid, err := uuid.Parse(studentID)
	if err != nil {
		return nil, apperrors.Validation("student id must be a valid id")
	}
	var recs []AttendanceRecord
	if err := s.db.WithContext(ctx).Where("student_id = ?", sid).Order("recorded_at desc").Find(&recs).Error; err != nil {
		return nil, apperrors.Dependency("class store", err)
	}
	return recs, nil
}
