// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reactome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/browser"

	"github.com/pdiddy/pathway-engine/internal/httputil"
	"github.com/pdiddy/pathway-engine/pkg/types"
)

// validate is a singleton validator instance for overlay options.
var validate = validator.New()

// openBrowser opens a URL in the system browser. Declared as a var so tests
// can stub it out.
var openBrowser = browser.OpenURL

// OverlayOptions control the overlay submission and the optional diagram
// export. Start from DefaultOverlayOptions; the export-related fields are
// only validated when ExportPath is set.
type OverlayOptions struct {
	// OpenBrowser opens the Pathway Browser URL in the system browser.
	OpenBrowser bool

	// ExportPath, when set, is where the overlaid diagram image is written.
	ExportPath string

	ImageFormat   string `validate:"oneof=png gif svg jpg jpeg pptx"`
	DiagramColors string `validate:"oneof=Modern Standard"`
	OverlayColors string `validate:"oneof=Standard Strosobar 'Copper Plus'"`
	Quality       int    `validate:"min=1,max=10"`

	// DisplayColumn selects which data column the exported image overlays.
	// -1 means all columns, which is how a gif gets one frame per column.
	DisplayColumn int `validate:"min=-1"`
}

// DefaultOverlayOptions returns the standard overlay settings: open the
// browser, no export, png at quality 7, Modern diagram colors, Standard
// overlay colors, first data column.
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{
		OpenBrowser:   true,
		ImageFormat:   "png",
		DiagramColors: "Modern",
		OverlayColors: "Standard",
		Quality:       7,
	}
}

// OverlayResult reports where the overlaid diagram can be seen.
type OverlayResult struct {
	ViewerURL  string `json:"viewer_url" yaml:"viewer_url"`
	ExportPath string `json:"export_path,omitempty" yaml:"export_path,omitempty"`
	Token      string `json:"token" yaml:"token"`
}

// Overlay submits the expression table to the Reactome analysis service and
// returns the Pathway Browser URL showing the data overlaid on the given
// pathway's diagram, optionally opening it in the system browser and
// exporting a static image. Validation failures come back as
// *InvalidParameterError before any request is sent.
func (c *Client) Overlay(ctx context.Context, table *ExpressionTable, pathwayID string, cfg types.ReactomeConfig, opts OverlayOptions, w io.Writer) (*OverlayResult, error) {
	if opts.ExportPath != "" {
		if err := validateOverlayOptions(opts, table); err != nil {
			return nil, err
		}
	}

	token, err := c.submitAnalysis(ctx, table, cfg)
	if err != nil {
		return nil, err
	}

	result := &OverlayResult{
		ViewerURL: fmt.Sprintf("%s/#/%s&DTAB=AN&ANALYSIS=%s", pathwayBrowserBase, pathwayID, token),
		Token:     token,
	}

	if opts.OpenBrowser {
		if err := openBrowser(result.ViewerURL); err != nil {
			fmt.Fprintf(w, "warning: could not open browser: %v\n", err)
		}
	}

	if opts.ExportPath != "" {
		if err := c.exportDiagram(ctx, pathwayID, token, cfg, opts); err != nil {
			return nil, err
		}
		result.ExportPath = opts.ExportPath
	}
	return result, nil
}

// submitAnalysis posts the table to the analysis service and returns the
// token identifying the stored analysis.
func (c *Client) submitAnalysis(ctx context.Context, table *ExpressionTable, cfg types.ReactomeConfig) (string, error) {
	reqURL := analysisServiceBase + "/identifiers/projection"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(table.TSV()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("Reactome analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("submitting data for analysis: %w", httputil.ErrorFromResponse(resp))
	}

	var analysis analysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return "", fmt.Errorf("parsing Reactome analysis response: %w", err)
	}
	if analysis.Summary.Token == "" {
		return "", fmt.Errorf("Reactome analysis response carried no token")
	}
	return analysis.Summary.Token, nil
}

// exportDiagram fetches the overlaid diagram image and writes it to the
// export path using a temporary file.
func (c *Client) exportDiagram(ctx context.Context, pathwayID, token string, cfg types.ReactomeConfig, opts OverlayOptions) error {
	expColumn := ""
	if opts.DisplayColumn >= 0 {
		expColumn = fmt.Sprintf("%d", opts.DisplayColumn)
	}
	params := url.Values{
		"token":           {token},
		"resource":        {"TOTAL"},
		"diagramProfile":  {opts.DiagramColors},
		"analysisProfile": {opts.OverlayColors},
		"expColumn":       {expColumn},
		"quality":         {fmt.Sprintf("%d", opts.Quality)},
	}
	reqURL := fmt.Sprintf("%s/exporter/diagram/%s.%s?%s",
		contentServiceBase, url.PathEscape(pathwayID), opts.ImageFormat, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("Reactome diagram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("exporting diagram: %w", httputil.ErrorFromResponse(resp))
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(opts.ExportPath), ".diagram-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing diagram: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, opts.ExportPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// validateOverlayOptions checks the export parameters against the table
// being overlaid.
func validateOverlayOptions(opts OverlayOptions, table *ExpressionTable) error {
	if err := validate.Struct(opts); err != nil {
		return formatValidationError(err)
	}

	if opts.DisplayColumn >= len(table.Columns) {
		return &InvalidParameterError{
			Param: "display column",
			Reason: fmt.Sprintf("must be -1 (all columns) or between 0 and %d for this table, got %d",
				len(table.Columns)-1, opts.DisplayColumn),
		}
	}

	if ext := strings.TrimPrefix(filepath.Ext(opts.ExportPath), "."); ext != opts.ImageFormat {
		return &InvalidParameterError{
			Param:  "export path",
			Reason: fmt.Sprintf("file extension %q must match the image format %q", ext, opts.ImageFormat),
		}
	}

	if strings.HasPrefix(opts.ExportPath, "~/") {
		return &InvalidParameterError{
			Param:  "export path",
			Reason: "home-directory references are not expanded; provide a full path",
		}
	}
	return nil
}

// formatValidationError converts validator errors into the package's
// parameter error, naming the option the way the CLI exposes it.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, ve := range verrs {
		param := optionName(ve.StructField())
		switch ve.Tag() {
		case "oneof":
			return &InvalidParameterError{
				Param:  param,
				Reason: fmt.Sprintf("valid options are [%s], got %v", ve.Param(), ve.Value()),
			}
		case "min", "max":
			if ve.StructField() == "Quality" {
				return &InvalidParameterError{
					Param:  param,
					Reason: fmt.Sprintf("must be between 1 and 10 inclusive, got %v", ve.Value()),
				}
			}
			return &InvalidParameterError{
				Param:  param,
				Reason: fmt.Sprintf("must be -1 (all columns) or a column index, got %v", ve.Value()),
			}
		default:
			return &InvalidParameterError{
				Param:  param,
				Reason: fmt.Sprintf("validation failed (%s)", ve.Tag()),
			}
		}
	}
	return err
}

func optionName(field string) string {
	switch field {
	case "ImageFormat":
		return "image format"
	case "DiagramColors":
		return "diagram colors"
	case "OverlayColors":
		return "overlay colors"
	case "Quality":
		return "quality"
	case "DisplayColumn":
		return "display column"
	}
	return field
}

// Reactome AnalysisService JSON structure; only the token is needed.
type analysisResponse struct {
	Summary analysisSummary `json:"summary"`
}

type analysisSummary struct {
	Token      string `json:"token"`
	Projection bool   `json:"projection"`
}
