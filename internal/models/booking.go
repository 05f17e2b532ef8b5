package models

import "time"

// Booking представляет заявку на запись, сохраняемую локально
type Booking struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания заявки
	ID        string    `json:"id"`         // ID уникальный идентификатор заявки (UUID)
	Name      string    `json:"name"`       // Name имя клиента
	Phone     string    `json:"phone"`      // Phone контактный телефон
	Service   string    `json:"service"`    // Service запрашиваемая услуга
	Date      string    `json:"date"`       // Date желаемая дата (как прислал клиент)
	Comment   string    `json:"comment"`    // Comment дополнительный комментарий
}

// ContactMessage представляет сообщение с формы обратной связи
type ContactMessage struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время получения сообщения
	ID        string    `json:"id"`         // ID уникальный идентификатор сообщения (UUID)
	Name      string    `json:"name"`       // Name имя отправителя
	Contact   string    `json:"contact"`    // Contact email или телефон для ответа
	Message   string    `json:"message"`    // Message текст сообщения
}
