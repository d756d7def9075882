package v1

import (
	"github.com/shenikar/rescuenet_portal/internal/broadcast"
	"github.com/shenikar/rescuenet_portal/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель.
// Пустые поля заполнит сервис.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Name:     dto.Name,
		Severity: models.IncidentSeverity(dto.Severity),
		Location: dto.Location,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Name:        model.Name,
		Severity:    string(model.Severity),
		Status:      string(model.Status),
		Location:    model.Location,
		CreatedAt:   model.CreatedAt,
		LastUpdated: model.LastUpdated,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToSupportForm преобразует анкету из запроса в контейнер формы
func DTOToSupportForm(dto SupportFormRequest) *models.SupportForm {
	return &models.SupportForm{
		Name:            dto.Name,
		Phone:           dto.Phone,
		Email:           dto.Email,
		Skills:          dto.Skills,
		Availability:    dto.Availability,
		DonationType:    models.DonationType(dto.DonationType),
		DonationDetails: dto.DonationDetails,
		Amount:          dto.Amount,
	}
}

// MessageToBroadcastResponse преобразует отправленную рассылку в DTO
func MessageToBroadcastResponse(msg *broadcast.Message) *BroadcastResponse {
	sentAt := msg.CreatedAt
	return &BroadcastResponse{
		ID:      msg.ID,
		Message: msg.Text,
		SentAt:  &sentAt,
	}
}
