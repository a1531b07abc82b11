package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"placement-gateway/config"
	"placement-gateway/fiberlog"
	"placement-gateway/lib/dashboard"
	pdfexport "placement-gateway/lib/export/pdf"
	xlsexport "placement-gateway/lib/export/xls"
	placementclient "placement-gateway/lib/placement-client"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	opts := []placementclient.Option{
		placementclient.WithTimeout(config.Conf.Backend.Timeout),
		placementclient.WithUserAgent(config.Conf.Backend.UserAgent),
	}
	if auditor := InitAudit(); auditor != nil {
		opts = append(opts, placementclient.WithAuditor(auditor))
	}
	InitS3(ctx)
	placementclient.NewProvider(config.Conf.Backend.Host, opts...)
	dashboard.NewHandler(placementclient.Instance)
	xlsexport.NewHandler()
	InitPdfFont()
}

// InitPdfFont enables non-Latin names in PDF reports when a TrueType font is configured.
func InitPdfFont() {
	if config.Conf.Export.PdfFontPath == "" {
		log.Info("шрифт для PDF не настроен, символы вне cp1252 будут заменены")
		return
	}
	if err := pdfexport.SetUnicodeFont(config.Conf.Export.PdfFontPath, config.Conf.Export.PdfBoldFontPath); err != nil {
		log.WithError(err).Error("ошибка подключения шрифта для PDF")
	}
}
