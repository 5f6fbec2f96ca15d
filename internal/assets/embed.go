// Package assets carries the embedded property tables shipped with the
// binary. Tables are tab-separated text grouped by the package that owns
// them; everything under data/ is read at startup through [FS].
package assets

import "embed"

//go:embed data
var FS embed.FS
