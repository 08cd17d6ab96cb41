package api

// Product представляет товар каталога.
// Прокси передает товары как есть, структура используется клиентом.
type Product struct {
	ID          ID      `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductInput тело запроса на создание/изменение товара
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MessageResponse ответ с текстовым сообщением (удаление товара)
type MessageResponse struct {
	Message string `json:"message"`
}
