package render

import (
	"context"
	"testing"

	gerrors "github.com/matzehuels/ganttline/pkg/errors"
)

func TestConvertMissingTool(t *testing.T) {
	old := converter
	converter = "ganttline-no-such-converter"
	defer func() { converter = old }()

	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !gerrors.Is(err, gerrors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
	_, err = ToPNG(context.Background(), []byte("<svg/>"), 2)
	if !gerrors.Is(err, gerrors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want UNSUPPORTED", err)
	}
}
