package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents an account record. Every other entity (analysis
// history, assessment result, journal entries) is owned by exactly one
// user and is never shared across accounts.
//
// Passwords are stored and compared in plaintext. This mirrors the
// product decision that accounts are a convenience, not a security
// boundary.
type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email    string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name     string    `json:"name" gorm:"type:varchar(255);not null"`
	Password string    `json:"-" gorm:"column:password;type:text;not null"`

	// Onboarding flags
	HasCompletedWelcome    bool `json:"has_completed_welcome" gorm:"default:false;not null"`
	HasCompletedAssessment bool `json:"has_completed_assessment" gorm:"default:false;not null"`

	// Profile
	Phone     string `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Birthdate string `json:"birthdate,omitempty" gorm:"type:varchar(20)"`
	Bio       string `json:"bio,omitempty" gorm:"type:text"`

	// Opaque per-user settings documents (stored as JSONB)
	Preferences     datatypes.JSON `json:"preferences" gorm:"type:jsonb;default:'{}'"`
	PrivacySettings datatypes.JSON `json:"privacy_settings" gorm:"type:jsonb;default:'{}'"`

	// Latest recommended videos, refreshed on every completed voice
	// analysis so the resources dashboard rehydrates without a join.
	LatestRecommendedVideos VideoRecommendations `json:"latest_recommended_videos" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(name, email, password string) *User {
	now := time.Now()

	prefs, _ := json.Marshal(map[string]interface{}{
		"daily_reminders":        true,
		"analysis_notifications": true,
		"weekly_reports":         false,
		"theme":                  "light",
		"language":               "en",
	})
	privacy, _ := json.Marshal(map[string]interface{}{
		"anonymous_analytics": true,
		"data_retention":      "1y",
	})

	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		Password:        password,
		Preferences:     prefs,
		PrivacySettings: privacy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if u.Password == "" {
		return ErrInvalidPassword
	}
	return nil
}

// Initials returns the uppercase initials used for the avatar display
func (u *User) Initials() string {
	parts := strings.Fields(u.Name)
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
	}
	return b.String()
}

// DaysActive returns the number of whole days since account creation
func (u *User) DaysActive(now time.Time) int {
	return int(now.Sub(u.CreatedAt).Hours() / 24)
}

// PublicUser returns a user with sensitive fields removed
type PublicUser struct {
	ID                     uuid.UUID `json:"id"`
	Email                  string    `json:"email"`
	Name                   string    `json:"name"`
	HasCompletedWelcome    bool      `json:"has_completed_welcome"`
	HasCompletedAssessment bool      `json:"has_completed_assessment"`
	Phone                  string    `json:"phone,omitempty"`
	Birthdate              string    `json:"birthdate,omitempty"`
	Bio                    string    `json:"bio,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:                     u.ID,
		Email:                  u.Email,
		Name:                   u.Name,
		HasCompletedWelcome:    u.HasCompletedWelcome,
		HasCompletedAssessment: u.HasCompletedAssessment,
		Phone:                  u.Phone,
		Birthdate:              u.Birthdate,
		Bio:                    u.Bio,
		CreatedAt:              u.CreatedAt,
	}
}
