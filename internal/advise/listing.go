package advise

import (
	"fmt"
	"strings"

	"github.com/pdiddy/mobile-advisor/pkg/types"
)

// CatalogListing serializes the catalog as the numbered plain-text listing
// the remote recommender expects, one device per line with every spec the
// model should weigh.
func CatalogListing(devices []types.Device) string {
	var b strings.Builder
	for i, d := range devices {
		fmt.Fprintf(&b, "%d. %s %s - Price: %s, RAM: %dGB, Storage: %dGB, "+
			"Camera: %dMP, Battery: %dmAh, Screen: %.2f\", OS: %s, Processor: %s, Network: %s\n",
			i+1, d.Brand, d.Model, d.PriceTier, d.RAM, d.Storage,
			d.CameraMP, d.BatteryMAh, d.ScreenSize, d.OS, d.Processor, d.Network)
	}
	return b.String()
}
