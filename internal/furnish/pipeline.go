package furnish

import (
	"log/slog"

	"github.com/philipparndt/gofurnish/internal/config"
	"github.com/philipparndt/gofurnish/pkg/meshio"
)

// Run executes one furnishing run: load and sanitize the shell, read the
// metadata, place every record and export the result. Input and export
// failures are returned as FatalInputError and FatalExportError; a missing
// or broken furniture model only shows up in the report.
func Run(cfg config.Config, logger *slog.Logger) (*Report, error) {
	logger = orDefault(logger)

	shellPath := cfg.ShellPath()
	logger.Info("loading house shell", "path", shellPath)
	shell, err := meshio.Load(shellPath)
	if err != nil {
		return nil, &FatalInputError{Stage: StageShell, Path: shellPath, Err: err}
	}

	NewSanitizer(cfg.CeilingPattern, cfg.ShellRotationX, logger).Sanitize(shell)

	primary, alternate := cfg.MetadataPaths()
	metadataPath, err := ResolveMetadataPath(primary, alternate)
	if err != nil {
		return nil, &FatalInputError{Stage: StageMetadata, Path: primary, Err: err}
	}
	logger.Info("loading metadata", "path", metadataPath)
	records, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, &FatalInputError{Stage: StageMetadata, Path: metadataPath, Err: err}
	}

	logger.Info("placing furniture", "assets", cfg.AssetsPath(), "records", len(records))
	composer := NewComposer(
		NewLocator(cfg.AssetsPath(), cfg.Candidates),
		NewAssetLoader(cfg.MergeParts),
		logger,
	)
	report := composer.Compose(shell, records)

	output := cfg.OutputPath()
	logger.Info("exporting", "path", output, "entries", shell.Len())
	if err := NewExporter().Export(shell, output); err != nil {
		return report, err
	}
	return report, nil
}
