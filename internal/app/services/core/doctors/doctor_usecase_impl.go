package doctors

import (
	"context"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/dto/responses"
	"radiox-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// doctorDirectoryCacheTTL bounds staleness of the directory listing; the seeder is the
// only writer, so a short TTL is enough.
const doctorDirectoryCacheTTL = 10 * time.Minute

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			RedisRepository:  redisRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors []models.Doctor

	doctorRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisDoctorDirectoryCacheKey)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error retrieving doctor data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if doctorRedisData == "" {
		uc.Log.Info("doctorUsecase.FindAll no data in Redis, fetching from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		doctors, err = uc.DoctorRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisDoctorDirectoryCacheKey, doctors, doctorDirectoryCacheTTL)
		if err != nil {
			uc.Log.Error("doctorUsecase.FindAll error caching doctors in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(doctorRedisData), &doctors)
		if err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	uc.Log.Info("doctorUsecase.FindAll fetched doctors",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(doctors)),
	)

	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		response[i] = eachDoctor.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return responses.Doctor{}, err
	}
	if doctor == nil {
		return responses.Doctor{}, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor.ConvertIntoResponse(), nil
}
