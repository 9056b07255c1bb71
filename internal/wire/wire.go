// internal/wire/wire.go
package wire

import (
	"airline-booking/internal/data/repository"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Client  *dynamodb.Client
	Repos   *repository.Repository
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(config *utils.Config, logger *zap.Logger) (*App, error) {
	client, err := database.InitDB(config.AWS)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepository(client, config.Tables, logger)
	service := usecase.NewService(repos, logger)

	return &App{
		Client:  client,
		Repos:   repos,
		Service: service,
	}, nil
}
