package api

// ContactRequest представляет сообщение с формы обратной связи
type ContactRequest struct {
	Name    string `json:"name"`    // Name имя отправителя
	Contact string `json:"contact"` // Contact email или телефон для ответа
	Message string `json:"message"` // Message текст сообщения
}

// BookingRequest представляет заявку на запись
type BookingRequest struct {
	Name    string `json:"name"`              // Name имя клиента
	Phone   string `json:"phone"`             // Phone контактный телефон
	Service string `json:"service,omitempty"` // Service запрашиваемая услуга
	Date    string `json:"date"`              // Date желаемая дата (свободный формат, валидируется только на непустоту)
	Comment string `json:"comment,omitempty"` // Comment дополнительный комментарий
}

// MessageResponse представляет ответ с подтверждающим сообщением
type MessageResponse struct {
	ID      string `json:"id,omitempty"` // ID идентификатор созданной записи
	Message string `json:"message"`      // сообщение об успешной операции
}
