package school_test

import (
	"context"
	"testing"
)

func TestEnrollIdempotentAndUnenroll(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	student := seedStudent(t, svc, "Asha", "asha@example.com")

	course, err := svc.CreateCourse(ctx, "Physics", "", "teacher-1")
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	c, found, err := svc.EnrollStudent(ctx, course.ID, student.ID)
	if err != nil || !found {
		t.Fatalf("enroll: found=%v err=%v", found, err)
	}
	if len(c.EnrolledStudents) != 1 {
		t.Fatalf("enrolled = %v", c.EnrolledStudents)
	}

	// enrolling again must not duplicate
	c, _, err = svc.EnrollStudent(ctx, course.ID, student.ID)
	if err != nil {
		t.Fatalf("re-enroll: %v", err)
	}
	if len(c.EnrolledStudents) != 1 {
		t.Fatalf("enrollment duplicated: %v", c.EnrolledStudents)
	}

	c, found, err = svc.UnenrollStudent(ctx, course.ID, student.ID)
	if err != nil || !found {
		t.Fatalf("unenroll: found=%v err=%v", found, err)
	}
	if len(c.EnrolledStudents) != 0 {
		t.Fatalf("still enrolled: %v", c.EnrolledStudents)
	}

	if _, found, err := svc.EnrollStudent(ctx, "missing", student.ID); err != nil || found {
		t.Fatalf("missing course: found=%v err=%v", found, err)
	}
}
