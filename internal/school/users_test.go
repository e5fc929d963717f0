package school_test

import (
	"context"
	"errors"
	"testing"

	"github.com/classdesk/classdesk/internal/model"
	"github.com/classdesk/classdesk/internal/school"
)

func TestSignupEnforcesUniqueEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u := seedStudent(t, svc, "Asha", "asha@example.com")
	if u.PasswordHash != "" {
		t.Fatalf("signup must return a sanitized user")
	}

	_, err := svc.Signup(ctx, model.User{Name: "Other", Email: "ASHA@example.com", Role: model.RoleStudent}, "pw")
	if !errors.Is(err, school.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}

	_, err = svc.Signup(ctx, model.User{Email: "x@example.com", Role: model.Role("clown")}, "pw")
	if !errors.Is(err, school.ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	seedStudent(t, svc, "Asha", "asha@example.com")

	if _, err := svc.Authenticate(ctx, "asha@example.com", "pw"); err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "asha@example.com", "wrong"); !errors.Is(err, school.ErrInvalidCredentials) {
		t.Fatalf("wrong password: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "pw"); !errors.Is(err, school.ErrInvalidCredentials) {
		t.Fatalf("unknown email: %v", err)
	}
}

func TestUpdateUserPartialMerge(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	u := seedStudent(t, svc, "Asha", "asha@example.com")

	phone := "555-0101"
	upd, found, err := svc.UpdateUser(ctx, u.ID, school.UserUpdate{Phone: &phone})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if upd.Phone != phone || upd.Name != "Asha" || upd.Email != "asha@example.com" {
		t.Fatalf("partial update touched other fields: %+v", upd)
	}

	_, found, err = svc.UpdateUser(ctx, "missing", school.UserUpdate{Phone: &phone})
	if err != nil || found {
		t.Fatalf("missing id: found=%v err=%v", found, err)
	}
}

func TestDeleteUserCascadesRosters(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	u := seedStudent(t, svc, "Asha", "asha@example.com")

	c, err := svc.CreateClass(ctx, "10-A", "")
	if err != nil {
		t.Fatalf("create class: %v", err)
	}
	if _, _, err := svc.AssignStudent(ctx, c.ID, u.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	found, err := svc.DeleteUser(ctx, u.ID)
	if err != nil || !found {
		t.Fatalf("delete: found=%v err=%v", found, err)
	}
	if _, ok := svc.Users.Get(ctx, u.ID); ok {
		t.Fatalf("user still stored")
	}
	got, _ := svc.Classes.Get(ctx, c.ID)
	for _, id := range got.Students {
		if id == u.ID {
			t.Fatalf("roster still references deleted user")
		}
	}

	// deleting again is a no-op
	found, err = svc.DeleteUser(ctx, u.ID)
	if err != nil || found {
		t.Fatalf("second delete: found=%v err=%v", found, err)
	}
}

func TestDeleteClassBatchUnassigns(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	teacher, err := svc.Signup(ctx, model.User{Name: "T", Email: "t@example.com", Role: model.RoleTeacher}, "pw")
	if err != nil {
		t.Fatal(err)
	}
	c, err := svc.CreateClass(ctx, "10-A", teacher.ID)
	if err != nil {
		t.Fatal(err)
	}
	s1 := seedStudent(t, svc, "A", "a@example.com")
	s2 := seedStudent(t, svc, "B", "b@example.com")
	for _, s := range []model.User{s1, s2} {
		if _, _, err := svc.AssignStudent(ctx, c.ID, s.ID); err != nil {
			t.Fatalf("assign: %v", err)
		}
	}

	found, err := svc.DeleteClass(ctx, c.ID)
	if err != nil || !found {
		t.Fatalf("delete class: found=%v err=%v", found, err)
	}
	for _, id := range []string{s1.ID, s2.ID} {
		u, _ := svc.Users.Get(ctx, id)
		if u.ClassID != "" {
			t.Fatalf("student %s still assigned to %s", id, u.ClassID)
		}
	}
	tu, _ := svc.Users.Get(ctx, teacher.ID)
	for _, id := range tu.Classes {
		if id == c.ID {
			t.Fatalf("teacher still lists deleted class")
		}
	}
}
