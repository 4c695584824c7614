package gateway

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fitflow/ai-gateway/pkg/domain"
	"github.com/samber/lo"
)

// ImageProvider is one provider strategy. The gateway picks exactly one per
// request; there is no cross-provider failover after selection.
type ImageProvider interface {
	Name() domain.ImageProviderName
	Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error)
}

// ImageGateway resolves a request to one provider strategy and normalizes
// the result to a data URI. The provider list is ordered: under "auto" the
// first configured strategy wins.
type ImageGateway struct {
	providers []ImageProvider
}

func NewImageGateway(providers ...ImageProvider) *ImageGateway {
	return &ImageGateway{providers: providers}
}

func (g *ImageGateway) Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, &domain.InvalidRequestError{Message: "Prompt é obrigatório"}
	}

	req.Style = lo.CoalesceOrEmpty(req.Style, domain.StyleProfessional)
	req.Size = lo.CoalesceOrEmpty(req.Size, domain.Size1024x1024)
	req.Provider = lo.CoalesceOrEmpty(req.Provider, domain.ProviderAuto)

	provider, err := g.resolveProvider(req.Provider)
	if err != nil {
		return nil, err
	}

	req.Prompt = domain.StyledPrompt(req.Prompt, req.Style)

	slog.InfoContext(ctx, "Generating image", "provider", provider.Name(), "style", req.Style, "size", req.Size)

	return provider.Generate(ctx, req)
}

func (g *ImageGateway) resolveProvider(pref domain.ImageProviderName) (ImageProvider, error) {
	if pref != domain.ProviderAuto {
		for _, p := range g.providers {
			if p.Name() == pref {
				return p, nil
			}
		}
		return nil, &domain.ConfigurationError{Message: "credencial não configurada para o provedor " + string(pref)}
	}

	if len(g.providers) == 0 {
		return nil, &domain.ConfigurationError{Message: "nenhum provedor de imagem configurado"}
	}
	return g.providers[0], nil
}
