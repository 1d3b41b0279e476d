package ports

import "github.com/gabrielcapilla/tapedeck/internal/domain"

type ConfigService interface {
	Load() (domain.Config, error)
}
