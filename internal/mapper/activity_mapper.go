package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(a.Metadata) > 0 {
		_ = json.Unmarshal(a.Metadata, &metadata)
	}

	return &entity.Activity{
		Id:          a.Id,
		Type:        entity.ActivityType(a.Type),
		CustomerId:  a.CustomerId,
		JobId:       a.JobId,
		InvoiceId:   a.InvoiceId,
		Description: a.Description,
		Metadata:    metadata,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}

	var metadata datatypes.JSON
	if a.Metadata != nil {
		raw, _ := json.Marshal(a.Metadata)
		metadata = datatypes.JSON(raw)
	}

	return &model.Activity{
		Id:          a.Id,
		Type:        string(a.Type),
		CustomerId:  a.CustomerId,
		JobId:       a.JobId,
		InvoiceId:   a.InvoiceId,
		Description: a.Description,
		Metadata:    metadata,
		CreatedAt:   a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
