package api

// Settings настройки ИИ пользователя
type Settings struct {
	AITone string `json:"aiTone"`
}
