// Package prompt renders a GenerationRequest into the natural-language
// instruction sent to the generation service.
//
// Each present field contributes exactly one block and blocks always appear
// in the same order: subject, title, YouTube link, podcast link, additional
// context, clarity instruction, format instruction. Blocks are joined with a
// blank line. Rendering is pure; identical requests give identical prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/phrazzld/memofiche-api/internal/domain"
)

// BlockSeparator joins prompt blocks.
const BlockSeparator = "\n\n"

// ContextFence delimits user-supplied context inside the prompt.
const ContextFence = `"""`

const (
	clarityInstruction = "La mémofiche doit être claire, facile à comprendre et à mémoriser. " +
		"Mets en évidence les points clés, définitions importantes, et concepts essentiels. " +
		"Utilise un langage simple et direct."
	formatInstruction = "Formatte la réponse en Markdown simple (titres, listes à puces, gras, italique si nécessaire)."
)

// Build renders req into a single prompt string.
func Build(req domain.GenerationRequest) string {
	return strings.Join(Blocks(req), BlockSeparator)
}

// Blocks returns the ordered instruction blocks for req.
func Blocks(req domain.GenerationRequest) []string {
	blocks := make([]string, 0, 7)

	blocks = append(blocks, fmt.Sprintf(
		"Génère une mémofiche (fiche de révision concise et bien structurée) sur le sujet suivant : \"%s\".",
		req.Subject))

	if req.Title != nil {
		blocks = append(blocks, fmt.Sprintf(
			"Le titre de la mémofiche pourrait être : \"%s\". Tu peux l'adapter ou le reformuler "+
				"si tu juges cela pertinent pour améliorer la clarté ou l'impact.",
			*req.Title))
	}

	if req.YoutubeLink != nil {
		blocks = append(blocks, linkHint("cette vidéo YouTube", *req.YoutubeLink))
	}

	if req.PodcastLink != nil {
		blocks = append(blocks, linkHint("ce podcast", *req.PodcastLink))
	}

	if req.AdditionalContext != nil {
		blocks = append(blocks, fmt.Sprintf(
			"Utilise également le contexte supplémentaire suivant fourni par l'utilisateur "+
				"(textes, extraits de cours, etc.) pour enrichir la mémofiche :\n%s\n%s\n%s",
			ContextFence, *req.AdditionalContext, ContextFence))
	}

	return append(blocks, clarityInstruction, formatInstruction)
}

// linkHint asks the model to use a link as a contextual clue only.
func linkHint(source, link string) string {
	return fmt.Sprintf(
		"Considère les informations qui pourraient être extraites de %s "+
			"(sans y naviguer directement, utilise le lien comme indice contextuel) : %s.",
		source, link)
}
