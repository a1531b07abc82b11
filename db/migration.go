package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "placement-gateway/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.ExtApiAudit{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExtApiAudit")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
