package telemetry

import "log/slog"

// Analyzer runs the full pipeline over one capture: load, validate, coerce,
// extract statistics and warnings, detect breaches.
type Analyzer struct {
	schema *Schema
	log    *slog.Logger
}

// NewAnalyzer returns an Analyzer. A nil schema selects DefaultSchema, a nil
// logger selects slog.Default.
func NewAnalyzer(schema *Schema, logger *slog.Logger) *Analyzer {
	if schema == nil {
		schema = DefaultSchema()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{schema: schema, log: logger}
}

// AnalyzeFile loads a capture from path and analyzes it. When opts carries no
// alias table, the schema's aliases apply.
func (a *Analyzer) AnalyzeFile(path string, opts LoadOptions) (*Report, error) {
	if opts.Aliases == nil {
		opts.Aliases = a.schema.Aliases
	}
	t, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	a.log.Debug("loaded capture",
		slog.String("path", path),
		slog.Int("rows", len(t.Rows)),
		slog.Int("columns", len(t.Columns)))
	return a.AnalyzeTable(t)
}

// AnalyzeTable analyzes an already-loaded table. The only failure mode is
// schema validation; every step after it is total.
func (a *Analyzer) AnalyzeTable(t *Table) (*Report, error) {
	if err := ValidateColumns(t, a.schema); err != nil {
		return nil, err
	}
	d := Coerce(t, a.schema)
	rep := &Report{
		Speed:    SpeedStatistics(d),
		Summary:  Summarize(d, a.schema),
		Warnings: ExtractWarnings(t),
		Breaches: DetectBreaches(d, a.schema),
	}
	a.log.Debug("analyzed capture",
		slog.Int("speed_samples", rep.Speed.Count),
		slog.Int("summary_rows", len(rep.Summary)),
		slog.Int("warnings", len(rep.Warnings)),
		slog.Int("breaches", len(rep.Breaches)))
	return rep, nil
}
