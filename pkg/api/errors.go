package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // описание ошибки
}

// Сообщения об ошибках, которые прокси отдает клиенту
const (
	MsgMissingToken   = "Token não fornecido"
	MsgInternalError  = "Erro interno do servidor"
	MsgProductDeleted = "Produto deletado com sucesso"
)

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
