package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Settings sub-documents (JSONB)
// ═══════════════════════════════════════════════════════════

type SeoSettings struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OgImage     string `json:"og_image"`
}

type BrandingSettings struct {
	LogoURL        string `json:"logo_url"`
	FaviconURL     string `json:"favicon_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

type CompanySettings struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
	MapURL   string `json:"map_url"`
}

// PageHero is the banner block at the top of a public page.
type PageHero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

type PageHeroMap map[string]PageHero

// SettingsSingletonID pins the settings row to a fixed primary key so a
// concurrent first read cannot create two documents - the insert conflicts
// instead.
var SettingsSingletonID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Settings is the site-wide singleton. The repository auto-creates it
// with defaults on first read, so callers never see "not found".
type Settings struct {
	ID         uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	SEO        SeoSettings      `json:"seo" gorm:"type:jsonb;not null;default:'{}'"`
	Branding   BrandingSettings `json:"branding" gorm:"type:jsonb;not null;default:'{}'"`
	Company    CompanySettings  `json:"company" gorm:"type:jsonb;not null;default:'{}'"`
	PageHeroes PageHeroMap      `json:"page_heroes" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Settings) TableName() string {
	return "settings"
}

// SettingsRequest replaces the whole singleton (the admin form submits
// every section at once).
type SettingsRequest struct {
	SEO        SeoSettings      `json:"seo"`
	Branding   BrandingSettings `json:"branding"`
	Company    CompanySettings  `json:"company"`
	PageHeroes PageHeroMap      `json:"page_heroes"`
}

// DefaultSettings returns the document created on first read of an empty
// store.
func DefaultSettings() *Settings {
	return &Settings{
		ID: SettingsSingletonID,
		SEO: SeoSettings{
			Title:       "KK Engineering - Vibro Sifters & Screening Machines",
			Description: "Manufacturer of vibro sifters, vibrating screens and sieving machines for pharmaceutical and industrial applications.",
			Keywords:    "vibro sifter, vibrating screen, sieving machine, gyratory screen",
		},
		Branding: BrandingSettings{
			PrimaryColor:   "#1e40af",
			SecondaryColor: "#f59e0b",
		},
		Company: CompanySettings{
			Name:    "KK Engineering",
			Tagline: "Precision screening and sieving solutions",
			Email:   "info@kkengineering.in",
		},
		PageHeroes: PageHeroMap{
			"home":     {Title: "Industrial Screening Solutions", Subtitle: "Vibro sifters and screens built to last"},
			"products": {Title: "Our Products"},
			"services": {Title: "Our Services"},
			"gallery":  {Title: "Gallery"},
			"contact":  {Title: "Contact Us"},
		},
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (s *SeoSettings) Scan(value interface{}) error {
	if value == nil {
		*s = SeoSettings{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SeoSettings")
	}
	return json.Unmarshal(bytes, s)
}

func (s SeoSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (b *BrandingSettings) Scan(value interface{}) error {
	if value == nil {
		*b = BrandingSettings{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan BrandingSettings")
	}
	return json.Unmarshal(bytes, b)
}

func (b BrandingSettings) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (c *CompanySettings) Scan(value interface{}) error {
	if value == nil {
		*c = CompanySettings{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CompanySettings")
	}
	return json.Unmarshal(bytes, c)
}

func (c CompanySettings) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (m *PageHeroMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(PageHeroMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PageHeroMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m PageHeroMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]PageHero{})
	}
	return json.Marshal(m)
}
