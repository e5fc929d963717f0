package school

import (
	"context"
	"sort"
	"time"

	"github.com/classdesk/classdesk/internal/model"
)

func (s *Service) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	a.ID = newID()
	a.CreatedAt = time.Now().UTC()
	if a.Priority == "" {
		a.Priority = "normal"
	}
	if a.Visibility == "" {
		a.Visibility = "all"
	}
	if err := s.Announcements.Add(ctx, a); err != nil {
		return model.Announcement{}, err
	}
	return a, nil
}

// ListAnnouncements returns announcements newest first.
func (s *Service) ListAnnouncements(ctx context.Context) []model.Announcement {
	out := s.Announcements.All(ctx)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// MarkAnnouncementRead appends userID to the read set. Read tracking is
// append-only; ids are never removed.
func (s *Service) MarkAnnouncementRead(ctx context.Context, id, userID string) (model.Announcement, bool, error) {
	return s.Announcements.Update(ctx, id, func(a *model.Announcement) {
		if a.ReadByUser(userID) {
			return
		}
		a.ReadBy = append(a.ReadBy, userID)
	})
}
