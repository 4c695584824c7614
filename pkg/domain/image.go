package domain

type ImageStyle string

const (
	StyleProfessional ImageStyle = "professional"
	StyleMedical      ImageStyle = "medical"
	StyleFitness      ImageStyle = "fitness"
	StyleNutrition    ImageStyle = "nutrition"
)

type ImageSize string

const (
	Size1024x1024 ImageSize = "1024x1024"
	Size1536x1024 ImageSize = "1536x1024"
	Size1024x1536 ImageSize = "1024x1536"
)

type ImageProviderName string

const (
	ProviderAuto        ImageProviderName = "auto"
	ProviderHuggingFace ImageProviderName = "huggingface"
	ProviderOpenAI      ImageProviderName = "openai"
)

// ImageRequest is one image-generation call. Model is an optional catalog
// key overriding prompt classification; it only applies to the Hugging Face
// provider.
type ImageRequest struct {
	Prompt   string
	Style    ImageStyle
	Size     ImageSize
	Provider ImageProviderName
	Model    string
}

// GeneratedImage is the normalized result. DataURI is always a base64 data
// URI whose media type matches the bytes the provider returned, regardless
// of which provider served the request.
type GeneratedImage struct {
	DataURI  string
	Model    string
	Provider ImageProviderName
}

var styleModifiers = map[ImageStyle]string{
	StyleProfessional: "professional photography, clean studio lighting, high quality",
	StyleMedical:      "medical illustration style, anatomically accurate, educational diagram",
	StyleFitness:      "dynamic fitness photography, gym environment, energetic",
	StyleNutrition:    "food photography, fresh ingredients, natural lighting, appetizing",
}

// StyledPrompt appends the style modifier to the prompt. Unknown styles fall
// back to the professional look.
func StyledPrompt(prompt string, style ImageStyle) string {
	m, ok := styleModifiers[style]
	if !ok {
		m = styleModifiers[StyleProfessional]
	}
	return prompt + ", " + m
}
