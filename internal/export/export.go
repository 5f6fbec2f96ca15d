// Package export writes sampled property curves to CSV, JSON and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Curve is a property sampled over a temperature range for one
// compound, plus enough metadata to make the file self describing.
type Curve struct {
	CAS      string    `json:"cas"`
	Chemical string    `json:"chemical,omitempty"`
	Property string    `json:"property"`
	Unit     string    `json:"unit"`
	Method   string    `json:"method,omitempty"`
	Temps    []float64 `json:"temperatures"`
	Values   []float64 `json:"values"`
}

// Sample evaluates f at n evenly spaced temperatures from lo to hi
// inclusive. n below 2 collapses to the two endpoints.
func Sample(lo, hi float64, n int, f func(float64) float64) ([]float64, []float64) {
	if n < 2 {
		n = 2
	}
	temps := make([]float64, n)
	values := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		t := lo + float64(i)*step
		temps[i] = t
		values[i] = f(t)
	}
	return temps, values
}

// ExportCSV writes the curve as two columns, temperature then value.
func ExportCSV(path string, c *Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"T", c.Property}); err != nil {
		return err
	}
	for i := range c.Temps {
		row := []string{
			strconv.FormatFloat(c.Temps[i], 'f', 6, 64),
			strconv.FormatFloat(c.Values[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ExportJSON writes the curve as an indented JSON document.
func ExportJSON(path string, c *Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}

// ExportJSONStdout writes the curve as indented JSON to stdout.
func ExportJSONStdout(c *Curve) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c)
}

// ExportSVG writes the curve rendered by CurveToSVG.
func ExportSVG(path string, c *Curve, width, height int, strokeColor string) error {
	svg := CurveToSVG(c, width, height, strokeColor)
	if svg == "" {
		return fmt.Errorf("export: curve %s/%s has fewer than two points", c.CAS, c.Property)
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
