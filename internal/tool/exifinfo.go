package tool

import (
	"bytes"
	"fmt"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"devtoolbox/internal/model"
)

func init() {
	Register(&exifTool{})
}

// exifTool extracts EXIF metadata from JPEG and TIFF bytes.
type exifTool struct{}

func (t *exifTool) Name() string     { return "exif" }
func (t *exifTool) Category() string { return "metadata" }

func (t *exifTool) Extensions() []string {
	return []string{".jpg", ".jpeg", ".tif", ".tiff"}
}

func (t *exifTool) MaxFileSizeMB() int64 { return 50 }

// tagCollector accumulates every EXIF field into a flat map
type tagCollector struct {
	tags map[string]interface{}
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if s, err := tag.StringVal(); err == nil {
		c.tags[string(name)] = s
		return nil
	}
	c.tags[string(name)] = tag.String()
	return nil
}

func (t *exifTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	raw, ok := in["data"].([]byte)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("image data is required")
	}

	x, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	collector := &tagCollector{tags: make(map[string]interface{})}
	if err := x.Walk(collector); err != nil {
		return nil, fmt.Errorf("failed to walk EXIF fields: %w", err)
	}

	out := model.GenericOutput{
		"tags":     collector.tags,
		"tagCount": len(collector.tags),
	}

	if ts, err := x.DateTime(); err == nil {
		out["dateTime"] = ts.UTC().Format("2006-01-02 15:04:05")
	}
	if lat, long, err := x.LatLong(); err == nil {
		out["latitude"] = lat
		out["longitude"] = long
	}
	if camModel, err := x.Get(exif.Model); err == nil {
		if s, err := camModel.StringVal(); err == nil {
			out["cameraModel"] = s
		}
	}

	return out, nil
}
