package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentAnswers is the ordered answer sequence, index-aligned to
// the fixed question bank. Values are 0-3.
type AssessmentAnswers []int

// AssessmentResult holds one user's scored self-assessment. A retake
// overwrites the previous result; there is exactly one row per user.
type AssessmentResult struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`

	Answers        AssessmentAnswers `json:"answers" gorm:"type:jsonb;serializer:json"`
	TotalScore     int               `json:"total_score"`
	RiskPercentage float64           `json:"risk_percentage"`
	RiskLevel      RiskLevel         `json:"risk_level" gorm:"type:varchar(20)"`

	// TextAnalysis is the collaborator's response to the generated
	// concern summary, stored as received.
	TextAnalysis datatypes.JSON `json:"text_analysis,omitempty" gorm:"type:jsonb"`

	CompletedAt time.Time `json:"completed_at" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for AssessmentResult
func (AssessmentResult) TableName() string {
	return "assessment_results"
}
