package domain

import (
	"sort"

	"github.com/samber/lo"
)

// DefaultImageModel is the fast low-latency class entry used whenever prompt
// classification cannot produce a usable answer.
const DefaultImageModel = "flux-schnell"

// ImageModelCatalog maps short model ids to their hosted Hugging Face
// references. Defined once at start, read-only afterwards.
var ImageModelCatalog = map[string]string{
	"stable-diffusion-2-1": "stabilityai/stable-diffusion-2-1",
	"stable-diffusion-xl":  "stabilityai/stable-diffusion-xl-base-1.0",
	"flux-schnell":         "black-forest-labs/FLUX.1-schnell",
	"flux-dev":             "black-forest-labs/FLUX.1-dev",
	"playground-v2":        "playgroundai/playground-v2-1024px-aesthetic",
	"dreamshaper":          "Lykon/DreamShaper",
	"realistic-vision":     "SG161222/Realistic_Vision_V5.1_noVAE",
}

func CatalogKeys() []string {
	keys := lo.Keys(ImageModelCatalog)
	sort.Strings(keys)
	return keys
}

func InCatalog(model string) bool {
	_, ok := ImageModelCatalog[model]
	return ok
}
