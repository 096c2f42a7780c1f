package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/normalize"
	"github.com/phrazzld/memofiche-api/internal/platform/files"
	"github.com/phrazzld/memofiche-api/internal/render"
	"github.com/phrazzld/memofiche-api/internal/service"
	"github.com/spf13/cobra"
)

// Output formats of the generate command.
const (
	formatTerminal = "terminal"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

type generateOptions struct {
	subject    string
	title      string
	youtube    string
	podcast    string
	context    string
	files      []string
	format     string
	style      string
	width      int
	promptOnly bool
}

func generateCmd(d deps) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Génère une mémofiche à partir d'un sujet et de documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, d, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.subject, "subject", "", "Sujet de la mémofiche (obligatoire)")
	f.StringVar(&opts.title, "title", "", "Titre souhaité")
	f.StringVar(&opts.youtube, "youtube", "", "Lien vers une vidéo YouTube")
	f.StringVar(&opts.podcast, "podcast", "", "Lien vers un podcast")
	f.StringVar(&opts.context, "context", "", "Texte de contexte supplémentaire")
	f.StringArrayVar(&opts.files, "file", nil, "Document à joindre (répétable)")
	f.StringVar(&opts.format, "format", formatTerminal, "Format de sortie : terminal, markdown ou html")
	f.StringVar(&opts.style, "style", "auto", "Style glamour pour la sortie terminal (auto, dark, light, notty...)")
	f.IntVar(&opts.width, "width", 80, "Largeur de la sortie terminal")
	f.BoolVar(&opts.promptOnly, "prompt-only", false, "Affiche le prompt sans appeler le service de génération")

	return cmd
}

func runGenerate(cmd *cobra.Command, d deps, opts generateOptions) error {
	switch opts.format {
	case formatTerminal, formatMarkdown, formatHTML:
	default:
		return &usageError{msg: fmt.Sprintf("format %q inconnu (terminal, markdown ou html)", opts.format)}
	}

	uploads, err := files.FromPaths(opts.files)
	if err != nil {
		return fmt.Errorf("%w: %w", normalize.ErrFileRead, err)
	}

	cfg, err := d.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := d.newLogger(cfg.Server)

	ctx := cmd.Context()
	gen, err := d.newGenerator(ctx, log, cfg.LLM)
	if err != nil {
		return err
	}

	svc, err := service.NewMemoFicheService(
		normalize.New(normalize.Options{MaxFileBytes: cfg.Upload.MaxFileBytes()}),
		gen,
		render.NewRenderer(),
		log,
	)
	if err != nil {
		return err
	}

	input := domain.FormInput{
		Subject:        opts.subject,
		Title:          opts.title,
		YoutubeLink:    opts.youtube,
		PodcastLink:    opts.podcast,
		AdditionalText: opts.context,
		Files:          uploads,
	}

	out := cmd.OutOrStdout()

	if opts.promptOnly {
		p, err := svc.PreviewPrompt(ctx, input)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, p)
		return err
	}

	fiche, err := svc.Generate(ctx, input)
	if err != nil {
		return err
	}

	return writeFiche(out, fiche, opts)
}

func writeFiche(out io.Writer, fiche *domain.MemoFiche, opts generateOptions) error {
	var text string
	switch opts.format {
	case formatMarkdown:
		text = fiche.Markdown
	case formatHTML:
		text = fiche.HTML
	default:
		rendered, err := renderTerminal(fiche.Markdown, opts.style, opts.width)
		if err != nil {
			return err
		}
		text = rendered
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(out, text)
	return err
}

func renderTerminal(markdown, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return renderer.Render(markdown)
}
