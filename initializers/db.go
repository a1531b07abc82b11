package initializers

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"placement-gateway/config"
	"placement-gateway/db"
	placementclient "placement-gateway/lib/placement-client"
	auditstore "placement-gateway/lib/placement-client/audit-store"
)

// InitAudit connects the audit database when auditing is enabled and returns the
// recorder for the placement client, or nil.
func InitAudit() placementclient.Auditor {
	if !config.Conf.AuditEnabled() {
		return nil
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, isSet(config.Conf.Database.DebugMode), isSet(config.Conf.Database.MigrateOnStart))
	if err != nil {
		panic(err.Error())
	}
	if err = db.PingDB(); err != nil {
		panic(errors.Wrap(err, "БД аудита недоступна").Error())
	}
	auditstore.NewHandler(db.DB)
	log.Info("аудит запросов к placement backend включен")
	return auditstore.NewRecorder(auditstore.Instance)
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}
