// Package dataprocessing implements the rice-price ingestion pipeline.
// It turns a raw commodity-price table (wide form, one column per date)
// into the two derived views the rest of the application consumes.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Normalizer: converts one raw cell into a price or the missing marker
// 2. Loader: parses, validates and reshapes the table into long form
// 3. Analytics: descriptive statistics over the derived views
//
// # Usage
//
//	loader := dataprocessing.NewLoader(logger, dataprocessing.DefaultLoaderConfig())
//	dataset, err := loader.Load(ctx, file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stats := dataprocessing.Describe(dataset.Summary)
//
// # Data Flow
//
//	raw bytes → Parse (Excel, then CSV) → Validate/Rename → Normalize →
//	Reshape → Date parse → Sort → (LongTable, SummaryTable)
//
// # Error Handling
//
// Fatal pipeline failures (unparseable input, missing identifier column,
// unparseable date headers) abort the load with a typed error and no
// partial result. Unparseable cell values are recoverable: they become the
// missing marker and only surface as reduced row counts.
package dataprocessing
