package domain

import "time"

// TimeOfDayLayout is the wire and storage format of experience start/end.
const TimeOfDayLayout = "15:04:05"

type Experience struct {
	ID          string      `json:"id"`
	Country     string      `json:"country"`
	City        string      `json:"city"`
	Name        string      `json:"name"`
	Price       int         `json:"price"`
	Address     string      `json:"address"`
	Start       string      `json:"start"`
	End         string      `json:"end"`
	Description string      `json:"description"`
	Host        UserSummary `json:"host"`
	Category    *Category   `json:"category"`
	Perks       []Perk      `json:"perks"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Experience) OwnerIdentity() string {
	return e.Host.ID
}

type CreateExperienceInput struct {
	Country     string
	City        string
	Name        string
	Price       int
	Address     string
	Start       string
	End         string
	Description string
	CategoryID  string
	PerkIDs     []string
}

type UpdateExperienceInput struct {
	Country     *string
	City        *string
	Name        *string
	Price       *int
	Address     *string
	Start       *string
	End         *string
	Description *string
	CategoryID  *string
	PerkIDs     []string
}

type Perk struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Details     string    `json:"details"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PerkInput struct {
	Name        string
	Details     string
	Explanation string
}

type PerkPatch struct {
	Name        *string
	Details     *string
	Explanation *string
}
