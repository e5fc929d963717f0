package school

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classdesk/classdesk/internal/audit"
	"github.com/classdesk/classdesk/internal/model"
)

// Signup creates a user after checking the email-uniqueness invariant.
// The password is bcrypt-hashed; the returned record is sanitized.
func (s *Service) Signup(ctx context.Context, u model.User, password string) (model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !u.Role.Valid() {
		return model.User{}, ErrInvalidRole
	}
	if _, ok := s.UserByEmail(ctx, u.Email); ok {
		return model.User{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return model.User{}, err
	}
	u.ID = newID()
	u.PasswordHash = string(hash)
	u.CreatedAt = time.Now().UTC()
	if err := s.Users.Add(ctx, u); err != nil {
		return model.User{}, err
	}
	return u.Sanitized(), nil
}

// Authenticate checks email+password and returns the sanitized user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	u, ok := s.UserByEmail(ctx, email)
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return model.User{}, ErrInvalidCredentials
	}
	return u.Sanitized(), nil
}

func (s *Service) UserByEmail(ctx context.Context, email string) (model.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.Users.All(ctx) {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return model.User{}, false
}

// UserUpdate is a partial profile update; zero-valued fields are left
// untouched.
type UserUpdate struct {
	Name       *string `json:"name,omitempty"`
	Photo      *string `json:"photo,omitempty"`
	DOB        *string `json:"dob,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Department *string `json:"department,omitempty"`
}

// UpdateUser merges upd into the stored user and returns the updated
// record. Callers holding a cached session copy refresh it from the
// return value; the store itself keeps no session state.
func (s *Service) UpdateUser(ctx context.Context, id string, upd UserUpdate) (model.User, bool, error) {
	u, found, err := s.Users.Update(ctx, id, func(u *model.User) {
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Photo != nil {
			u.Photo = *upd.Photo
		}
		if upd.DOB != nil {
			u.DOB = *upd.DOB
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Address != nil {
			u.Address = *upd.Address
		}
		if upd.Department != nil {
			u.Department = *upd.Department
		}
	})
	return u.Sanitized(), found, err
}

// DeleteUser removes the user and cascades: the id is dropped from every
// class roster (and teacher slot) in one batched rewrite of the class
// collection.
func (s *Service) DeleteUser(ctx context.Context, id string) (bool, error) {
	found, err := s.Users.Delete(ctx, id)
	if err != nil || !found {
		return found, err
	}
	classes := s.Classes.All(ctx)
	changed := false
	for i := range classes {
		if classes[i].TeacherID == id {
			classes[i].TeacherID = ""
			changed = true
		}
		kept := classes[i].Students[:0]
		for _, sid := range classes[i].Students {
			if sid == id {
				changed = true
				continue
			}
			kept = append(kept, sid)
		}
		classes[i].Students = kept
	}
	if changed {
		if err := s.Classes.Replace(ctx, classes); err != nil {
			return true, err
		}
	}
	s.logEvent(ctx, audit.TypeUserDeleted, id, nil)
	return true, nil
}
