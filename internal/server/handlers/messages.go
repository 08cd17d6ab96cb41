package handlers

// Сообщения об ошибках, когда backend не вернул detail
const (
	MsgInvalidCredentials = "Credenciais inválidas"
	MsgRegisterFailed     = "Erro ao registrar usuário"
	MsgInvalidToken       = "Token inválido"
	MsgGetSettingsFailed  = "Erro ao obter configurações"
	MsgSaveSettingsFailed = "Erro ao atualizar configurações"
	MsgListProductsFailed = "Erro ao listar produtos"
	MsgCreateProductFail  = "Erro ao criar produto"
	MsgUpdateProductFail  = "Erro ao atualizar produto"
	MsgDeleteProductFail  = "Erro ao deletar produto"
	MsgWebhookFailed      = "Erro ao processar webhook"
)
