package api

import "time"

// Review представляет один опубликованный отзыв в публичном API
type Review struct {
	CreatedAt time.Time `json:"created_at"` // CreatedAt время создания отзыва
	ID        string    `json:"id"`         // ID уникальный идентификатор отзыва (UUID)
	Text      string    `json:"text"`       // Text текст отзыва
	Avatar    string    `json:"avatar"`     // Avatar URI аватара автора
	Rating    int       `json:"rating"`     // Rating оценка 1..5
}

// AddReviewRequest представляет запрос на публикацию нового отзыва
type AddReviewRequest struct {
	Text   string `json:"text"`             // Text текст отзыва (обязательное поле)
	Avatar string `json:"avatar,omitempty"` // Avatar опциональный URI аватара
	Rating int    `json:"rating,omitempty"` // Rating опциональная оценка (0 = использовать дефолт)
}

// ClearReviewsResponse представляет ответ на очистку коллекции отзывов
type ClearReviewsResponse struct {
	Message string `json:"message"` // сообщение об успешной очистке
	Removed int    `json:"removed"` // количество удаленных отзывов
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
