package initializers

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"placement-gateway/config"
	filestorage "placement-gateway/lib/file-storage"
)

// InitS3 enables the export archive when an S3 endpoint is configured.
func InitS3(ctx context.Context) {
	if !config.Conf.S3Enabled() {
		log.Info("S3 не настроен, архив отчетов отключен")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: isSet(config.Conf.S3.UseSSL),
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	filestorage.NewHandler(minioClient, config.Conf.S3.BucketName)
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = filestorage.Instance.MakeBucket(checkCtx); err != nil {
		filestorage.Instance = nil
		log.WithError(err).Error("S3 соединение не удалось, архив отчетов отключен")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
