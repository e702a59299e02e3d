// internal/domain/catalog/data.go
package catalog

import "fmt"

const (
	// DefaultPageCount is the number of pages in the current printed catalog
	DefaultPageCount = 132

	defaultImagePattern = "https://media-es.oriflame.com/2024009/2024009%03d.jpg"
)

// hotspots by 1-based page number
var defaultHotspots = map[int][]Hotspot{
	3: {
		{ProductID: 46801, Position: Position{X: 70, Y: 50}},
		{ProductID: 49145, Position: Position{X: 32, Y: 62}},
	},
	5: {
		{ProductID: 38497, Position: Position{X: 65, Y: 50}},
		{ProductID: 47016, Position: Position{X: 25, Y: 80}},
		{ProductID: 42041, Position: Position{X: 68, Y: 82}},
	},
	7: {
		{ProductID: 46901, Position: Position{X: 70, Y: 48}},
		{ProductID: 47828, Position: Position{X: 72, Y: 75}},
	},
	9: {
		{ProductID: 47949, Position: Position{X: 50, Y: 60}},
	},
}

// DefaultPages builds the page list of the current printed catalog
func DefaultPages() []Page {
	pages := make([]Page, 0, DefaultPageCount)
	for n := 1; n <= DefaultPageCount; n++ {
		hotspots := make([]Hotspot, len(defaultHotspots[n]))
		copy(hotspots, defaultHotspots[n])
		pages = append(pages, Page{
			Number:   n,
			ImageURL: fmt.Sprintf(defaultImagePattern, n),
			Hotspots: hotspots,
		})
	}
	return pages
}
