package pkgcss

import (
	"errors"
	"fmt"
	"io"

	"github.com/yacobolo/pkgcss/internal/logging"
	core "github.com/yacobolo/pkgcss/internal/pkgcss"
)

// ErrWarningsInStrictMode is returned by Generate when Strict is set and
// analysis produced warnings
var ErrWarningsInStrictMode = errors.New("warnings reported in strict mode")

// Generate is the main entry point. The stylesheet is rendered and
// validated in memory, so nothing reaches w unless the whole run succeeds.
func Generate(w io.Writer, config Config) (*GenerateResult, error) {
	logger := logging.GetLogger("generate")
	result := &GenerateResult{PackagesKnown: config.Colors.Len()}

	// 1. Discover packages and extract classes
	scan, err := Scan(config)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.PackagesFound = len(scan.Packages)
	result.FilesScanned = scan.FilesScanned
	result.Warnings = scan.Warnings

	for _, warning := range scan.Warnings {
		logger.Warn().
			Str("package", warning.Package).
			Str("kind", warning.Kind).
			Msg(warning.Text)
	}

	if config.Strict && len(scan.Warnings) > 0 {
		return result, fmt.Errorf("%w: %d warnings", ErrWarningsInStrictMode, len(scan.Warnings))
	}

	// 2. Render
	for _, pkg := range scan.Packages {
		if len(pkg.Classes) > 0 {
			result.PackagesEmitted++
			result.ClassesEmitted += len(pkg.Classes)
		}
	}
	stylesheet := core.RenderStylesheet(config.Colors, scan.Packages, config.Links)

	// 3. Validate
	if config.Validate {
		stats, err := core.ValidateStylesheet([]byte(stylesheet))
		switch {
		case err != nil && config.Strict:
			return result, fmt.Errorf("validate failed: %w", err)
		case err != nil:
			// Class names are emitted literally, so a malformed name is
			// reported but does not stop the run.
			warning := Warning{Kind: core.WarningInvalidStylesheet, Text: err.Error()}
			result.Warnings = append(result.Warnings, warning)
			logger.Warn().Str("kind", warning.Kind).Msg(warning.Text)
		default:
			result.Rules = stats.Rules
			logger.Debug().
				Int("rules", stats.Rules).
				Int("declarations", stats.Declarations).
				Msg("Stylesheet validated")
		}
	}

	// 4. Write
	if _, err := io.WriteString(w, stylesheet); err != nil {
		return result, fmt.Errorf("write failed: %w", err)
	}

	logger.Info().
		Int("packages", result.PackagesEmitted).
		Int("classes", result.ClassesEmitted).
		Int("files", result.FilesScanned).
		Msg("Generated stylesheet")

	return result, nil
}
