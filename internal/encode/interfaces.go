package encode

import (
	"context"

	"github.com/ytget/nvenc-encoder/internal/model"
)

// Runner executes one external process and streams its combined output.
type Runner interface {
	Run(ctx context.Context, args []string, onLine func(string)) ProcessOutcome
}

// Converter defines the interface for the batch conversion service.
type Converter interface {
	SetLineCallback(func(string))
	SetUpdateCallback(func(model.ConversionTask))
	SetFinishedCallback(func(model.Report))
	Start(batch model.Batch) error
	Run(ctx context.Context, batch model.Batch) (model.Report, error)
	Cancel() error
	State() model.BatchState
	Wait() model.Report
}

var (
	_ Runner    = (*ExecRunner)(nil)
	_ Converter = (*Service)(nil)
)
