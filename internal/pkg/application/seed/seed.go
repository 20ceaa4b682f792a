package seed

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"

	"github.com/diwise/postharvest/pkg/postharvest/types"
)

var tracer = otel.Tracer("postharvest/seed")

//go:generate moq -rm -out importer_mock.go . Importer

// Importer creates reference data, typically through the api client
type Importer interface {
	CreateCommodity(ctx context.Context, c types.Commodity) (types.Commodity, error)
	CreateEthyleneSensitivity(ctx context.Context, commodityID string, e types.EthyleneSensitivity) (types.EthyleneSensitivity, error)
	CreateRespirationRate(ctx context.Context, commodityID string, rr types.RespirationRate) (types.RespirationRate, error)
	CreateShelfLife(ctx context.Context, commodityID string, sl types.ShelfLife) (types.ShelfLife, error)
	CreateTemperatureRecommendation(ctx context.Context, commodityID string, tr types.TemperatureRecommendation) (types.TemperatureRecommendation, error)
	CreateReference(ctx context.Context, commodityID, source string) (types.Reference, error)
	CreateStudy(ctx context.Context, s types.Study) (types.Study, error)
	LinkStudy(ctx context.Context, studyID int, commodityID string) (types.StudyCommodity, error)
}

type Summary struct {
	Commodities int
	Handling    int
	References  int
	Studies     int
	Links       int
}

// Import creates everything in the dataset and stops at the first failure.
// Dependents are attached to the ids returned for their commodity.
func Import(ctx context.Context, ds *Dataset, importer Importer) (Summary, error) {
	var err error
	summary := Summary{}

	ctx, span := tracer.Start(ctx, "import-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)
	ids := map[string]string{}

	for _, c := range ds.Commodities {
		var id string

		id, err = importCommodity(ctx, importer, c, &summary)
		if err != nil {
			return summary, err
		}

		if c.Key != "" {
			ids[c.Key] = id
		}

		log.Debug("commodity imported", "id", id)
	}

	for _, s := range ds.Studies {
		var study types.Study

		study, err = importer.CreateStudy(ctx, s.study())
		if err != nil {
			err = fmt.Errorf("failed to create study %q: %w", s.Title, err)
			return summary, err
		}
		summary.Studies++

		for _, key := range s.Commodities {
			_, err = importer.LinkStudy(ctx, study.ID, ids[key])
			if err != nil {
				err = fmt.Errorf("failed to link study %q to %s: %w", s.Title, ids[key], err)
				return summary, err
			}
			summary.Links++
		}
	}

	log.Info("dataset imported",
		"commodities", summary.Commodities,
		"handling", summary.Handling,
		"references", summary.References,
		"studies", summary.Studies,
		"links", summary.Links,
	)

	return summary, nil
}

func importCommodity(ctx context.Context, importer Importer, c Commodity, summary *Summary) (string, error) {
	created, err := importer.CreateCommodity(ctx, c.commodity())
	if err != nil {
		return "", fmt.Errorf("failed to create commodity %s: %w", c.CommodityName, err)
	}
	summary.Commodities++

	id := created.ID

	failed := func(kind string, err error) error {
		return fmt.Errorf("failed to create %s for %s: %w", kind, id, err)
	}

	for _, e := range c.EthyleneSensitivity {
		data := types.EthyleneSensitivity{Temperature: e.Temperature, C2H4Production: e.C2H4Production, C2H4Class: e.C2H4Class}
		if _, err := importer.CreateEthyleneSensitivity(ctx, id, data); err != nil {
			return id, failed("ethylene sensitivity", err)
		}
		summary.Handling++
	}

	for _, rr := range c.RespirationRate {
		data := types.RespirationRate{Temperature: rr.Temperature, RRRate: rr.RRRate, RRClass: rr.RRClass}
		if _, err := importer.CreateRespirationRate(ctx, id, data); err != nil {
			return id, failed("respiration rate", err)
		}
		summary.Handling++
	}

	for _, sl := range c.ShelfLife {
		data := types.ShelfLife{Temperature: sl.Temperature, ShelfLife: sl.ShelfLife, Packaging: sl.Packaging, Description: sl.Description}
		if _, err := importer.CreateShelfLife(ctx, id, data); err != nil {
			return id, failed("shelf life", err)
		}
		summary.Handling++
	}

	for _, tr := range c.TemperatureRecommendations {
		data := types.TemperatureRecommendation{MinTemp: tr.MinTemp, OptimumTemp: tr.OptimumTemp, Description: tr.Description, RH: tr.RH}
		if _, err := importer.CreateTemperatureRecommendation(ctx, id, data); err != nil {
			return id, failed("temperature recommendation", err)
		}
		summary.Handling++
	}

	for _, source := range c.References {
		if _, err := importer.CreateReference(ctx, id, source); err != nil {
			return id, failed("reference", err)
		}
		summary.References++
	}

	return id, nil
}
