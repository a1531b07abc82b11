package dbmodels

import (
	"github.com/pkg/errors"
)

// ExtApiAudit is one outbound exchange with the placement backend.
type ExtApiAudit struct {
	BaseModel
	Method       string `gorm:"type:varchar(10)" comment:"HTTP метод"`
	Uri          string `comment:"Адрес запроса"`
	RequestBody  string `comment:"Тело запроса"`
	StatusCode   int    `comment:"Код ответа, 0 если бэкенд недоступен"`
	ResponseBody string `comment:"Тело ответа (усечено)"`
	DurationMs   int64  `comment:"Длительность, мс"`
	RequestID    string `gorm:"type:varchar(64);index" comment:"Идентификатор входящего запроса"`
	Initiator    string `gorm:"type:varchar(255)" comment:"Инициатор вызова"`
	Error        string `comment:"Ошибка транспорта"`
}

func (ExtApiAudit) TableName() string {
	return "ext_api_audits"
}

func (r ExtApiAudit) Validate() error {
	if r.Method == "" {
		return errors.New("не указан метод запроса")
	}
	if r.Uri == "" {
		return errors.New("не указан адрес запроса")
	}
	return nil
}
