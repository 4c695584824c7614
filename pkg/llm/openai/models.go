package openai

type imageGenerationRequest struct {
	Model        string `json:"model"`
	Prompt       string `json:"prompt"`
	N            int    `json:"n"`
	Size         string `json:"size"`
	Quality      string `json:"quality"`
	OutputFormat string `json:"output_format"`
	Background   string `json:"background"`
}

type imageGenerationResponse struct {
	Data []imageData `json:"data"`
}

type imageData struct {
	B64JSON string `json:"b64_json"`
}

const (
	qualityHigh       = "high"
	outputFormatWebp  = "webp"
	backgroundAuto    = "auto"
	defaultImageCount = 1
)
