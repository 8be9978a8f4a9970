package services

import (
	"context"

	"github.com/hisao5232/my-price-tracker/internal/client/client"
)

// StatusService exposes connection housekeeping to the CLI.
//
// Contract:
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type StatusService interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type statusService struct {
	client client.Client
}

func NewStatusService(c client.Client) StatusService {
	return &statusService{client: c}
}

func (s *statusService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *statusService) Close(_ context.Context) error {
	return s.client.Close()
}
