package model

type AIModel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Provider    AIProvider `json:"provider"`
	Description string     `json:"description,omitempty"`
}

type VoiceSettings struct {
	Enabled bool   `json:"enabled"`
	VoiceID string `json:"voiceId,omitempty"`
}

type PrivacySettings struct {
	DataSharingEnabled bool `json:"dataSharingEnabled"`
	StorageEnabled     bool `json:"storageEnabled"`
}

// AppSettings is a single-document configuration object. There is exactly
// one instance; Reset replaces it wholesale with DefaultSettings.
type AppSettings struct {
	Theme         Theme           `json:"theme"`
	Notifications bool            `json:"notifications"`
	AIModel       AIModel         `json:"aiModel"`
	Voice         VoiceSettings   `json:"voice"`
	Privacy       PrivacySettings `json:"privacy"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         ThemeSystem,
		Notifications: true,
		AIModel: AIModel{
			ID:       "gpt-3.5-turbo",
			Name:     "GPT-3.5 Turbo",
			Provider: ProviderOpenAI,
		},
		Voice: VoiceSettings{
			Enabled: true,
		},
		Privacy: PrivacySettings{
			DataSharingEnabled: false,
			StorageEnabled:     true,
		},
	}
}
