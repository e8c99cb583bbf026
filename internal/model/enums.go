package model

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

type SessionMode string

const (
	ModeChat  SessionMode = "chat"
	ModeVoice SessionMode = "voice"
)

type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodNeutral  MoodType = "neutral"
	MoodSad      MoodType = "sad"
	MoodAnxious  MoodType = "anxious"
	MoodAngry    MoodType = "angry"
	MoodCalm     MoodType = "calm"
	MoodStressed MoodType = "stressed"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type AIProvider string

const (
	ProviderOpenAI AIProvider = "openai"
	ProviderGemini AIProvider = "gemini"
	ProviderClaude AIProvider = "claude"
)

type ToastSeverity string

const (
	ToastSuccess ToastSeverity = "success"
	ToastError   ToastSeverity = "error"
	ToastInfo    ToastSeverity = "info"
)
