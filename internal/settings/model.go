package settings

// CompanyProfile is the shop identity printed on quotes.
type CompanyProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Website string `json:"website,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// UserProfile identifies the operator of this installation.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Preferences hold presentation-level options; the computed numeric
// values never depend on them.
type Preferences struct {
	Currency      string `json:"currency"`
	Language      string `json:"language"`
	Timezone      string `json:"timezone"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
}

// Settings is the whole settings document kept under one key.
type Settings struct {
	Company     CompanyProfile `json:"company"`
	User        UserProfile    `json:"user"`
	Preferences Preferences    `json:"preferences"`
}

// Defaults returns the settings used before the operator saves any.
func Defaults() Settings {
	return Settings{
		Preferences: Preferences{
			Currency:      "BRL",
			Language:      "pt-BR",
			Timezone:      "America/Sao_Paulo",
			Notifications: true,
			AutoSave:      true,
		},
	}
}
