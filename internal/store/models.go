package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var errIncompatibleJSON = errors.New("incompatible type for JSON column")

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type BusinessProfile struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Offer     string    `db:"offer"`
	Avatar    string    `db:"avatar"`
	Problems  string    `db:"problems"`
	Desires   string    `db:"desires"`
	Tone      string    `db:"tone"`
	Language  string    `db:"language"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Campaign is an immutable generated campaign. BusinessProfile is a snapshot
// of the inputs at generation time, not a live reference.
type Campaign struct {
	ID                uuid.UUID       `db:"id"`
	UserID            uuid.UUID       `db:"user_id"`
	BusinessProfileID uuid.UUID       `db:"business_profile_id"`
	VSLTitle          string          `db:"vsl_title"`
	VSLScriptA        string          `db:"vsl_script_a"`
	VSLScriptB        string          `db:"vsl_script_b"`
	VideoScripts      StringList      `db:"video_scripts"`
	AdCopyA           string          `db:"ad_copy_a"`
	AdCopyB           string          `db:"ad_copy_b"`
	HeadlineA         string          `db:"headline_a"`
	HeadlineB         string          `db:"headline_b"`
	Language          string          `db:"language"`
	BusinessProfile   ProfileSnapshot `db:"business_profile"`
	GeneratedAt       time.Time       `db:"generated_at"`
	CreatedAt         time.Time       `db:"created_at"`
}

// CampaignSummary is the list view of a campaign
type CampaignSummary struct {
	ID                uuid.UUID `db:"id"`
	BusinessProfileID uuid.UUID `db:"business_profile_id"`
	VSLTitle          string    `db:"vsl_title"`
	Language          string    `db:"language"`
	CreatedAt         time.Time `db:"created_at"`
}

// StringList is a JSONB array of strings
type StringList []string

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 || string(data) == "null" {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// ProfileSnapshot is the JSONB copy of the business profile a campaign was generated from
type ProfileSnapshot struct {
	Offer    string `json:"offer"`
	Avatar   string `json:"avatar"`
	Problems string `json:"problems"`
	Desires  string `json:"desires"`
	Tone     string `json:"tone"`
	Language string `json:"language"`
}

// Value implements the driver.Valuer interface for ProfileSnapshot
func (p ProfileSnapshot) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for ProfileSnapshot
func (p *ProfileSnapshot) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 || string(data) == "null" {
		*p = ProfileSnapshot{}
		return nil
	}
	return json.Unmarshal(data, p)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errIncompatibleJSON
	}
}
