package models

// Link - нормализованная ссылка-источник из метаданных grounding
type Link struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundingResult - ответ модели вместе со ссылками, подтверждающими его
type GroundingResult struct {
	Text  string `json:"text"`
	Links []Link `json:"links"`
}
