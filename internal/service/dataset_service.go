package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/domain"
	"github.com/Xenith-Quantumweather/luhnsynth/internal/core/ports"
	"github.com/Xenith-Quantumweather/luhnsynth/pkg/apperror"
)

// datasetService implements ports.DatasetExporter.
type datasetService struct {
	gen      ports.TransactionGenerator
	encoders []ports.TransactionEncoder
	store    ports.DatasetStore
	log      zerolog.Logger
}

// NewDatasetService creates the exporter that ties generation to the
// registered encoders and the output store.
func NewDatasetService(
	gen ports.TransactionGenerator,
	encoders []ports.TransactionEncoder,
	store ports.DatasetStore,
	log zerolog.Logger,
) ports.DatasetExporter {
	return &datasetService{
		gen:      gen,
		encoders: encoders,
		store:    store,
		log:      log,
	}
}

// Export generates one batch per size and writes it in every registered
// format as transactions_<size>.<ext>. The first failure aborts the run;
// files already written are left in place.
func (s *datasetService) Export(sizes []int) ([]string, error) {
	log := s.log.With().Str("run_id", uuid.New().String()).Logger()
	log.Info().Ints("sizes", sizes).Msg("Generating test datasets")

	files := make([]string, 0, len(sizes)*len(s.encoders))
	for _, size := range sizes {
		batch, err := s.gen.GenerateBatch(size)
		if err != nil {
			return files, err
		}

		for _, enc := range s.encoders {
			name := fmt.Sprintf("transactions_%d.%s", size, enc.Extension())
			if err := s.writeDataset(name, batch, enc); err != nil {
				return files, err
			}
			files = append(files, name)
			log.Info().Str("file", name).Int("records", len(batch)).Msg("Dataset written")
		}
	}

	log.Info().Int("files", len(files)).Msg("Generation complete")
	return files, nil
}

func (s *datasetService) writeDataset(name string, batch []domain.Transaction, enc ports.TransactionEncoder) error {
	w, err := s.store.Create(name)
	if err != nil {
		return apperror.ErrCreateOutput(name, err)
	}

	if err := enc.Encode(w, batch); err != nil {
		_ = w.Close()
		return apperror.ErrWriteOutput(name, err)
	}

	if err := w.Close(); err != nil {
		return apperror.ErrWriteOutput(name, err)
	}
	return nil
}
