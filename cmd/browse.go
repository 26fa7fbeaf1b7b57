package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"studio-portfolio/pkg/i18n"
	"studio-portfolio/pkg/lightbox"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
	"studio-portfolio/pkg/services"
	"studio-portfolio/pkg/taxonomy"
)

const keyInterrupt = 0x03

// newBrowseCmd creates a new command for stepping through items in the terminal
func newBrowseCmd() *cobra.Command {
	var media, group, sub, lang string
	cmd := &cobra.Command{
		Use:   "browse [id]",
		Short: "Step through portfolio items in the terminal",
		Long: `Open the lightbox on an item of the selected list and move through it with the
arrow keys (or h and l). Escape or q closes it.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			items := loadItems(cmd.Context())
			sel := portfolio.ParseSelection(url.Values{
				"media": {media},
				"group": {group},
				"sub":   {sub},
			})
			startID := ""
			if len(args) > 0 {
				startID = args[0]
			}
			if err := browse(items, sel, languageOrDefault(lang), startID); err != nil {
				logging.Logger.Fatal("Browse failed", "err", err)
			}
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "all", "Media filter: all, photos or videos")
	cmd.Flags().StringVar(&group, "group", taxonomy.AllGroupID, "Category group id")
	cmd.Flags().StringVar(&sub, "sub", "", "Sub-category id")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Caption language: ro or en (defaults to DEFAULT_LANGUAGE)")
	return cmd
}

// browse runs the lightbox against the terminal in raw mode
func browse(items []models.GalleryItem, sel portfolio.Selection, lang models.Language, startID string) error {
	view := portfolio.BuildView(items, sel)
	if view.Empty() {
		return errors.New(i18n.T(lang, "No items in this category"))
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("browse needs an interactive terminal")
	}

	keys := lightbox.NewDispatcher()
	nav := lightbox.NewNavigator(view.Items, lightbox.WithKeySource(keys))
	assets := services.Default().Config().AssetsBase
	playing := ""
	nav.AddStopper(lightbox.StopFunc(func() {
		if playing != "" {
			logging.Logger.Debug("Stopping playback", "id", playing)
			playing = ""
		}
	}))

	if startID == "" {
		startID = view.Items[0].Base().ID
	}
	if !nav.OpenID(startID) {
		return errors.New(i18n.T(lang, "Item not found"))
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 8)
	for nav.IsOpen() {
		content := lightbox.Render(nav.Current(), lang, assets)
		if content.Kind == lightbox.ContentVideo || content.Kind == lightbox.ContentEmbed {
			playing = content.ID
		}
		drawLightbox(os.Stdout, nav, content, lang)

		n, err := os.Stdin.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				nav.Close()
				break
			}
			return err
		}
		if n == 1 && buf[0] == keyInterrupt {
			nav.Close()
			break
		}
		if key, ok := lightbox.DecodeTerminalKey(buf[:n]); ok {
			keys.Dispatch(key)
		}
	}

	fmt.Fprint(os.Stdout, "\x1b[2J\x1b[H")
	return nil
}

// drawLightbox clears the screen and prints the open item. Raw mode needs
// explicit carriage returns.
func drawLightbox(w io.Writer, nav *lightbox.Navigator, content lightbox.Content, lang models.Language) {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")
	fmt.Fprintf(&b, "%d / %d  %s\r\n\r\n", nav.Index()+1, len(nav.Items()), content.Alt)

	switch content.Kind {
	case lightbox.ContentImage:
		fmt.Fprintf(&b, "image  %s\r\n", content.Src)
	case lightbox.ContentVideo:
		fmt.Fprintf(&b, "video  %s\r\n", content.Src)
		if content.Poster != "" {
			fmt.Fprintf(&b, "poster %s\r\n", content.Poster)
		}
	case lightbox.ContentEmbed:
		fmt.Fprintf(&b, "embed  %s\r\n", content.EmbedURL)
	case lightbox.ContentUnavailable:
		fmt.Fprintf(&b, "%s\r\n", content.Message)
	}

	b.WriteString("\r\n")
	if nav.HasPrev() {
		fmt.Fprintf(&b, "← %s  ", i18n.T(lang, "Previous"))
	}
	if nav.HasNext() {
		fmt.Fprintf(&b, "%s →  ", i18n.T(lang, "Next"))
	}
	fmt.Fprintf(&b, "q %s\r\n", i18n.T(lang, "Close"))

	io.WriteString(w, b.String())
}
