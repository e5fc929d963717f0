package model

import "time"

type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedBy  string    `json:"created_by"`
	Priority   string    `json:"priority,omitempty"`   // low|normal|high
	Visibility string    `json:"visibility,omitempty"` // all|teachers|students|class:<id>
	ReadBy     []string  `json:"read_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a Announcement) EntityID() string { return a.ID }

func (a Announcement) ReadByUser(userID string) bool {
	for _, id := range a.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
