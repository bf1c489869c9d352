package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings sections addressable by PATCH /api/admin/settings/:section
var SettingsSections = []string{"contactInfo", "socialMedia", "seo", "appearance", "features"}

// ContactInfo is the site-wide contact block
type ContactInfo struct {
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	WhatsApp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
}

// SocialMedia holds the site's social profile links
type SocialMedia struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// SiteSEO is the site-wide SEO block
type SiteSEO struct {
	MetaTitle       string `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Keywords        string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// Appearance holds theme colors
type Appearance struct {
	PrimaryColor   string `bson:"primaryColor,omitempty" json:"primaryColor,omitempty"`
	SecondaryColor string `bson:"secondaryColor,omitempty" json:"secondaryColor,omitempty"`
	AccentColor    string `bson:"accentColor,omitempty" json:"accentColor,omitempty"`
}

// FeatureFlags toggles optional site features
type FeatureFlags struct {
	EnableBlog       bool `bson:"enableBlog" json:"enableBlog"`
	EnableNewsletter bool `bson:"enableNewsletter" json:"enableNewsletter"`
	EnableLiveChat   bool `bson:"enableLiveChat" json:"enableLiveChat"`
}

// Settings is the singleton site configuration document
type Settings struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SiteName        string             `bson:"siteName" json:"siteName"`
	SiteDescription string             `bson:"siteDescription" json:"siteDescription"`
	Logo            string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Favicon         string             `bson:"favicon,omitempty" json:"favicon,omitempty"`
	ContactInfo     ContactInfo        `bson:"contactInfo" json:"contactInfo"`
	SocialMedia     SocialMedia        `bson:"socialMedia" json:"socialMedia"`
	SEO             SiteSEO            `bson:"seo" json:"seo"`
	Appearance      Appearance         `bson:"appearance" json:"appearance"`
	Features        FeatureFlags       `bson:"features" json:"features"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidSettingsSection reports whether s names a patchable settings section
func IsValidSettingsSection(s string) bool {
	for _, section := range SettingsSections {
		if s == section {
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings document created on first access and
// by the reset endpoint.
func DefaultSettings() *Settings {
	return &Settings{
		SiteName:        "AMZ Properties",
		SiteDescription: "Premium Real Estate Services in Dubai",
		ContactInfo: ContactInfo{
			Email:    "info@amzproperties.com",
			Phone:    "+971 4 123 4567",
			WhatsApp: "+971 50 123 4567",
			Address:  "Dubai Marina, Dubai, UAE",
		},
		SEO: SiteSEO{
			MetaTitle:       "AMZ Properties - Premium Real Estate Dubai",
			MetaDescription: "Discover premium real estate opportunities in Dubai with AMZ Properties.",
			Keywords:        "Dubai real estate, property investment, luxury homes",
		},
		Appearance: Appearance{
			PrimaryColor:   "#1a365d",
			SecondaryColor: "#2d3748",
			AccentColor:    "#3182ce",
		},
		Features: FeatureFlags{
			EnableBlog:       true,
			EnableNewsletter: true,
			EnableLiveChat:   false,
		},
	}
}
