package catalog

import (
	"context"
	"io"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/repository"
)

type AirportUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error)
}

type RouteUseCase interface {
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error)
}

type CrewUseCase interface {
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error)
}

type FleetUseCase interface {
	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error)
	RenameAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error)
	UploadAirplaneTypeImage(ctx context.Context, id int64, filename string, src io.Reader) (*domain.AirplaneType, error)
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error)
}

// ImageStore persists uploaded images and returns a media-relative path.
type ImageStore interface {
	Save(name, originalFilename string, src io.Reader) (string, error)
}

type AirportInput struct {
	Name        string `json:"name"`
	ClosestCity string `json:"closest_city"`
}

type RouteInput struct {
	SourceID      int64 `json:"source"`
	DestinationID int64 `json:"destination"`
	Distance      int   `json:"distance"`
}

type CrewInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AirplaneInput struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	TypeID     int64  `json:"airplane_type"`
}

type CatalogService struct {
	airports  repository.AirportRepository
	routes    repository.RouteRepository
	crew      repository.CrewRepository
	types     repository.AirplaneTypeRepository
	airplanes repository.AirplaneRepository
	images    ImageStore
}

func NewCatalogService(
	airports repository.AirportRepository,
	routes repository.RouteRepository,
	crew repository.CrewRepository,
	types repository.AirplaneTypeRepository,
	airplanes repository.AirplaneRepository,
	images ImageStore,
) *CatalogService {
	return &CatalogService{
		airports:  airports,
		routes:    routes,
		crew:      crew,
		types:     types,
		airplanes: airplanes,
		images:    images,
	}
}

func (s *CatalogService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.airports.List(ctx)
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if input.ClosestCity == "" {
		return nil, domain.NewValidationError("closest_city", "closest_city is required")
	}
	airport := &domain.Airport{Name: input.Name, ClosestCity: input.ClosestCity}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *CatalogService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.routes.List(ctx)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, input RouteInput) (*domain.Route, error) {
	if err := domain.ValidateRouteAirports(input.SourceID, input.DestinationID); err != nil {
		return nil, err
	}
	if input.Distance < 0 {
		return nil, domain.NewValidationError("distance", "distance must not be negative")
	}
	route := &domain.Route{SourceID: input.SourceID, DestinationID: input.DestinationID, Distance: input.Distance}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return s.routes.GetByID(ctx, route.ID)
}

func (s *CatalogService) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	return s.crew.List(ctx)
}

func (s *CatalogService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crew.GetByID(ctx, id)
}

func (s *CatalogService) CreateCrew(ctx context.Context, input CrewInput) (*domain.Crew, error) {
	if input.FirstName == "" {
		return nil, domain.NewValidationError("first_name", "first_name is required")
	}
	if input.LastName == "" {
		return nil, domain.NewValidationError("last_name", "last_name is required")
	}
	member := &domain.Crew{FirstName: input.FirstName, LastName: input.LastName}
	if err := s.crew.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *CatalogService) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.types.List(ctx)
}

func (s *CatalogService) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	t := &domain.AirplaneType{Name: name}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) RenameAirplaneType(ctx context.Context, id int64, name string) (*domain.AirplaneType, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	return s.types.UpdateName(ctx, id, name)
}

func (s *CatalogService) UploadAirplaneTypeImage(ctx context.Context, id int64, filename string, src io.Reader) (*domain.AirplaneType, error) {
	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	path, err := s.images.Save(t.Name, filename, src)
	if err != nil {
		return nil, err
	}
	return s.types.UpdateImage(ctx, id, path)
}

func (s *CatalogService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.airplanes.List(ctx)
}

func (s *CatalogService) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.airplanes.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirplane(ctx context.Context, input AirplaneInput) (*domain.Airplane, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if err := domain.ValidateAirplaneLayout(input.Rows, input.SeatsInRow); err != nil {
		return nil, err
	}
	airplane := &domain.Airplane{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
		TypeID:     input.TypeID,
	}
	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, err
	}
	return s.airplanes.GetByID(ctx, airplane.ID)
}

var (
	_ AirportUseCase = (*CatalogService)(nil)
	_ RouteUseCase   = (*CatalogService)(nil)
	_ CrewUseCase    = (*CatalogService)(nil)
	_ FleetUseCase   = (*CatalogService)(nil)
)
