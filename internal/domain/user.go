package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Language string

const (
	LanguageKorean  Language = "kr"
	LanguageEnglish Language = "en"
)

type Currency string

const (
	CurrencyWon Currency = "won"
	CurrencyUSD Currency = "usd"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	Avatar         string    `json:"avatar"`
	IsHost         bool      `json:"is_host"`
	Gender         Gender    `json:"gender"`
	Language       Language  `json:"language"`
	Currency       Currency  `json:"currency"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Summary is the public, compact view of a user embedded in other resources.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
		Email:    u.Email,
	}
}

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

type CreateUserInput struct {
	Email    string
	Password string
	Username string
}

type UpdateProfileInput struct {
	Username       *string
	Avatar         *string
	IsHost         *bool
	Gender         *Gender
	Language       *Language
	Currency       *Currency
	TelegramChatID *int64
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenClaims is what survives token validation.
type TokenClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (l Language) Valid() bool {
	return l == LanguageKorean || l == LanguageEnglish
}

func (c Currency) Valid() bool {
	return c == CurrencyWon || c == CurrencyUSD
}
