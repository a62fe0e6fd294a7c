package ports

import (
	"context"
	"io"

	"sportstat/domain/dataset"
)

// DatasetLoader turns an uploaded or local tabular file into a Dataset.
// The name is used for format detection and error messages only.
type DatasetLoader interface {
	Load(ctx context.Context, name string, src io.Reader) (*dataset.Dataset, error)
}
