package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Platform struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	LogoPath     *string   `gorm:"size:255" json:"logo_path"`
	Description  string    `gorm:"type:text" json:"description"`
	WebsiteURL   *string   `gorm:"size:255" json:"website_url"`
	Rating       float64   `gorm:"type:numeric(2,1);default:0" json:"rating"`
	Pros         string    `gorm:"type:text" json:"pros"`
	Cons         string    `gorm:"type:text" json:"cons"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Platform) ProsList() []string { return splitLines(p.Pros) }
func (p *Platform) ConsList() []string { return splitLines(p.Cons) }

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
