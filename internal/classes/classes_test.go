package classes

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ashishshah/live-attendance/internal/apperrors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "classes.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&Class{}, &AttendanceRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func TestCreateClass(t *testing.T) {
	svc := newTestService(t)
	teacherID := uuid.NewString()

	class, err := svc.CreateClass(context.Background(), "Algebra I", teacherID)
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}
	if class.ID == uuid.Nil {
		t.Error("class id not generated")
	}
	if class.Name != "Algebra I" {
		t.Errorf("name = %q", class.Name)
	}
	if class.TeacherID.String() != teacherID {
		t.Errorf("teacher id = %s, want %s", class.TeacherID, teacherID)
	}
}

func TestCreateClassBadTeacherID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateClass(context.Background(), "Algebra I", "not-a-uuid")
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidInput {
		t.Fatalf("err = %v, want INVALID_INPUT", err)
	}
}

func TestRecordAttendance(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	class, err := svc.CreateClass(ctx, "History", uuid.NewString())
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}

	studentID := uuid.NewString()
	rec, err := svc.RecordAttendance(ctx, class.ID.String(), studentID)
	if err != nil {
		t.Fatalf("RecordAttendance: %v", err)
	}
	if rec.ClassID != class.ID {
		t.Errorf("class id = %s, want %s", rec.ClassID, class.ID)
	}
	if rec.StudentID.String() != studentID {
		t.Errorf("student id = %s, want %s", rec.StudentID, studentID)
	}
}

func TestRecordAttendanceUnknownClass(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RecordAttendance(context.Background(), uuid.NewString(), uuid.NewString())
	appErr, ok := apperrors.AsAppError(err)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
}

func TestListAttendanceOnlyOwnRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	class, err := svc.CreateClass(ctx, "Chemistry", uuid.NewString())
	if err != nil {
		t.Fatalf("CreateClass: %v", err)
	}

	alice := uuid.NewString()
	bob := uuid.NewString()
	if _, err := svc.RecordAttendance(ctx, class.ID.String(), alice); err != nil {
		t.Fatalf("RecordAttendance alice: %v", err)
	}
	if _, err := svc.RecordAttendance(ctx, class.ID.String(), bob); err != nil {
		t.Fatalf("RecordAttendance bob: %v", err)
	}

	recs, err := svc.ListAttendance(ctx, alice)
	if err != nil {
		t.Fatalf("ListAttendance: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].StudentID.String() != alice {
		t.Errorf("record belongs to %s, want %s", recs[0].StudentID, alice)
	}
}
