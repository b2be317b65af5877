package controller

import (
	"github.com/pradiptars/energimap/internal/pkg/seed"
	"github.com/pradiptars/energimap/internal/service/analysis"
	"github.com/pradiptars/energimap/internal/service/energy"
)

type Controller struct {
	energy      *energy.Service
	analysis    *analysis.Service
	loader      *seed.Loader
	datasetPath string
}

func NewController(
	energySvc *energy.Service,
	analysisSvc *analysis.Service,
	loader *seed.Loader,
	datasetPath string,
) *Controller {
	return &Controller{
		energy:      energySvc,
		analysis:    analysisSvc,
		loader:      loader,
		datasetPath: datasetPath,
	}
}
